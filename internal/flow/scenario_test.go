package flow_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flowstation/internal/flow"
)

var _ = Describe("Station", func() {
	var st *flow.Station

	Context("dry air at ambient conditions", func() {
		BeforeEach(func() {
			st = flow.New()
			Expect(st.SetW(100)).To(Succeed())
			Expect(st.SetDryAir()).To(Succeed())
			Expect(st.SetTotalTP(518, 15)).To(Succeed())
		})

		It("matches the tabulated total state", func() {
			Expect(st.Pt()).To(BeNumerically("~", 15, 1e-12))
			Expect(st.Tt()).To(BeNumerically("~", 518, 1e-12))
			Expect(st.Ht()).To(BeNumerically("~", -6.2274, 6.2274e-3))
			Expect(st.Rhot()).To(BeNumerically("~", 0.07815, 0.07815e-3))
			Expect(st.Gamt()).To(BeNumerically("~", 1.401, 1.401e-3))
		})

		It("returns to the same state through the hP and sP paths", func() {
			ht, s := st.Ht(), st.St()

			Expect(st.SetTotalTP(1000, 40)).To(Succeed())
			Expect(st.SetTotalHP(ht, 15)).To(Succeed())
			Expect(st.Tt()).To(BeNumerically("~", 518, 518e-6))
			Expect(st.Rhot()).To(BeNumerically("~", 0.07815, 0.07815e-3))

			Expect(st.SetTotalTP(1000, 40)).To(Succeed())
			Expect(st.SetTotalSP(s, 15)).To(Succeed())
			Expect(st.Tt()).To(BeNumerically("~", 518, 518e-6))
			Expect(st.Gamt()).To(BeNumerically("~", 1.401, 1.401e-3))
		})

		It("copies into an independent station", func() {
			cp := flow.New()
			cp.CopyFrom(st)
			Expect(cp.Tt()).To(BeNumerically("~", 518, 518e-3))
			Expect(cp.Pt()).To(BeNumerically("~", 15, 15e-3))

			Expect(cp.SetTotalTP(700, 20)).To(Succeed())
			Expect(st.Tt()).To(Equal(518.0))
		})
	})

	Context("combustor exit", func() {
		var fuel int

		BeforeEach(func() {
			st = flow.New(flow.WithMixPolicy(flow.MixKeepPressure))
			Expect(st.SetDryAir()).To(Succeed())
			Expect(st.SetTotalTP(1100, 400)).To(Succeed())
			Expect(st.SetW(100)).To(Succeed())

			var err error
			fuel, err = st.AddReactant([]string{"C", "H"}, []float64{0.862, 0.138})
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Burn(fuel, 2.5, -642)).To(Succeed())
		})

		It("conserves mass and raises the temperature", func() {
			Expect(st.W()).To(Equal(102.5))
			Expect(st.FAR()).To(BeNumerically("~", 0.025, 1e-12))
			Expect(st.Pt()).To(Equal(400.0))
			Expect(st.Tt()).To(BeNumerically("~", 2669.72, 2.67))
			Expect(st.Ht()).To(BeNumerically("~", 117.26, 0.1173))
			Expect(st.Gamt()).To(BeNumerically("~", 1.2935, 1.2935e-3))
		})

		It("mixes in a humid bleed stream", func() {
			bleed := flow.New()
			Expect(bleed.SetDryAir()).To(Succeed())
			Expect(bleed.SetTotalTP(1000, 15)).To(Succeed())
			Expect(bleed.SetW(10)).To(Succeed())
			Expect(bleed.SetWAR(0.02)).To(Succeed())

			Expect(st.Add(bleed)).To(Succeed())
			Expect(st.W()).To(Equal(112.5))
			Expect(st.FAR()).To(BeNumerically("~", 0.02272, 0.02272e-3))
			Expect(st.Pt()).To(Equal(400.0))
			Expect(st.Gamt()).To(BeNumerically("~", 1.2973, 1.2973e-3))
		})
	})

	Context("statics at 1100 R and 400 psia", func() {
		BeforeEach(func() {
			st = flow.New()
			Expect(st.SetW(100)).To(Succeed())
			Expect(st.SetDryAir()).To(Succeed())
			Expect(st.SetTotalTP(1100, 400)).To(Succeed())
		})

		expectReference := func(s flow.Static) {
			Expect(s.Area).To(BeNumerically("~", 32.0066, 0.032))
			Expect(s.Mach).To(BeNumerically("~", 0.3, 0.3e-3))
			Expect(s.Ps).To(BeNumerically("~", 376.219, 0.376))
			Expect(s.Ts).To(BeNumerically("~", 1081.732, 1.08))
			Expect(s.Vflow).To(BeNumerically("~", 479.298, 0.479))
			// The reference density is 0.4% below the ideal-gas value at its
			// own Ts and Ps.
			Expect(s.Rhos).To(BeNumerically("~", 0.9347, 0.0047))
		}

		It("solves by Mach", func() {
			s, err := st.SetStaticByMach(0.3)
			Expect(err).NotTo(HaveOccurred())
			expectReference(s)
		})

		It("solves by area on the subsonic branch", func() {
			s, err := st.SetStaticByArea(32.0066, flow.Subsonic)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Mach).To(BeNumerically("<", 1))
			expectReference(s)
		})

		It("solves by static pressure", func() {
			s, err := st.SetStaticByPs(376.219)
			Expect(err).NotTo(HaveOccurred())
			expectReference(s)
		})

		It("solves from Ts, Ps and Mach", func() {
			s, err := st.SetStaticTsPsMN(1081.802, 376.219, 0.3)
			Expect(err).NotTo(HaveOccurred())
			expectReference(s)
		})

		DescribeTable("picks the branch of the area-Mach relation",
			func(b flow.Branch, matcher string) {
				s, err := st.SetStaticByArea(32, b)
				Expect(err).NotTo(HaveOccurred())
				Expect(s.Mach).To(BeNumerically(matcher, 1))
				Expect(s.Area).To(BeNumerically("~", 32, 1e-8))
			},
			Entry("subsonic", flow.Subsonic, "<"),
			Entry("supersonic", flow.Supersonic, ">"),
		)

		It("rejects an area below the throat", func() {
			_, err := st.SetStaticByArea(10, flow.Subsonic)
			Expect(err).To(MatchError(flow.ErrNoSolution))
		})
	})
})
