package projectile_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	launchSpeed = 30.0
	gravity     = 9.8
	dt          = 0.005
)

func vacuum() projectile.Config {
	return projectile.Config{
		Mass:            1,
		Speed:           launchSpeed,
		Angle:           math.Pi / 4,
		Density:         1.225,
		DragCoefficient: 0,
		Area:            0.05,
		Dt:              dt,
		Gravity:         gravity,
	}
}

func ball() projectile.Config {
	cfg := vacuum()
	cfg.DragCoefficient = 0.5
	return cfg
}

func run(adv projectile.Advancer, cfg projectile.Config) *projectile.Trace {
	trace, err := projectile.New(adv).Run(context.Background(), cfg)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, trace.Complete).To(BeTrue())
	return trace
}

var _ = Describe("Projectile runs", func() {
	var (
		vx0, vy0  float64
		apexTime  float64
		vacuumRng float64
	)

	BeforeEach(func() {
		vx0 = launchSpeed * math.Cos(math.Pi/4)
		vy0 = launchSpeed * math.Sin(math.Pi/4)
		apexTime = vy0 / gravity
		vacuumRng = launchSpeed * launchSpeed / gravity
	})

	DescribeTable("without drag matches closed-form projectile motion",
		func(adv projectile.Advancer) {
			trace := run(adv, vacuum())

			By("keeping vx constant")
			for i := range trace.VX {
				Expect(trace.VX[i]).To(BeNumerically("~", vx0, 1e-9))
			}

			By("following x = vx0·t and y = vy0·t - g·t²/2")
			for i, t := range trace.T {
				Expect(trace.X[i]).To(BeNumerically("~", vx0*t, 1e-9))
				y := vy0*t - 0.5*gravity*t*t
				Expect(trace.Y[i]).To(BeNumerically("~", y, gravity*t*dt+1e-9))
			}

			By("peaking and landing where the closed form does")
			apex := trace.ApexIndex()
			Expect(apex).To(BeNumerically(">", 0))
			Expect(trace.T[apex]).To(BeNumerically("~", apexTime, 2*dt))
			Expect(trace.Range()).To(BeNumerically("~", vacuumRng, 0.5))
		},
		Entry("euler", projectile.NewEuler()),
		Entry("analytic", projectile.NewAnalytic()),
		Entry("rk4 reference", projectile.NewReference("rk4", integrators.NewRK4())),
	)

	Describe("euler with drag", func() {
		var trace *projectile.Trace

		BeforeEach(func() {
			trace = run(projectile.NewEuler(), ball())
		})

		It("falls short of the drag-free range", func() {
			Expect(trace.Range()).To(BeNumerically("<", vacuumRng))
			Expect(trace.Range()).To(BeNumerically(">", 0))
		})

		It("crosses the ground exactly once, after the ascent", func() {
			last := trace.Len() - 1
			crossings := 0
			for i := 1; i <= last; i++ {
				if trace.Y[i-1] >= 0 && trace.Y[i] < 0 {
					crossings++
				}
			}
			Expect(crossings).To(Equal(1))
			Expect(trace.Y[last]).To(BeNumerically("<", 0))

			apex := trace.ApexIndex()
			Expect(apex).To(BeNumerically(">", 0))
			Expect(apex).To(BeNumerically("<", last))
		})

		It("records acceleration with drag opposing motion", func() {
			Expect(trace.HasAcceleration).To(BeTrue())
			for i := range trace.AX {
				Expect(trace.AX[i]).To(BeNumerically("<", 0))
			}
		})
	})

	Describe("analytic singularity guard", func() {
		It("rejects a horizontal launch on the first step", func() {
			cfg := ball()
			cfg.Angle = 0

			trace, err := projectile.New(projectile.NewAnalytic()).Run(context.Background(), cfg)
			Expect(err).To(MatchError(projectile.ErrSingularity))

			var se *projectile.SingularityError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Step).To(Equal(1))
			Expect(se.Axis).To(Equal("y"))

			Expect(trace.Complete).To(BeFalse())
			for _, vy := range trace.VY {
				Expect(math.IsNaN(vy)).To(BeFalse())
			}
		})
	})

	Describe("against the rk4 reference", func() {
		var reference *projectile.Trace

		BeforeEach(func() {
			reference = run(projectile.NewReference("rk4", integrators.NewRK4()), ball())
		})

		DescribeTable("range and flight time stay within 2%",
			func(adv projectile.Advancer) {
				trace := run(adv, ball())

				Expect(trace.Range()).To(BeNumerically("~", reference.Range(), 0.02*reference.Range()))
				final, _ := trace.Final()
				refFinal, _ := reference.Final()
				Expect(final.T).To(BeNumerically("~", refFinal.T, 0.02*refFinal.T))
			},
			Entry("euler", projectile.NewEuler()),
			Entry("analytic", projectile.NewAnalytic()),
		)
	})
})
