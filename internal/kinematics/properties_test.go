package kinematics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

var (
	velocities    = []float64{0, 1, 250.5, 10000, 1e6}
	accelerations = []float64{0, 0.1, 1, 3, 9.81, 50}
	times         = []float64{0, 1, 60, 3600, 86400}
)

var _ = Describe("NewVelocity", func() {
	It("never returns less than the initial velocity", func() {
		for _, v := range velocities {
			for _, a := range accelerations {
				for _, dt := range times {
					got, err := kinematics.NewVelocity(v, a, dt)
					Expect(err).NotTo(HaveOccurred())
					Expect(got).To(BeNumerically(">=", v), "v=%v a=%v t=%v", v, a, dt)
				}
			}
		}
	})

	It("leaves velocity unchanged with zero acceleration", func() {
		for _, v := range velocities {
			for _, dt := range times {
				Expect(kinematics.NewVelocity(v, 0, dt)).To(Equal(v))
			}
		}
	})

	It("leaves velocity unchanged with zero elapsed time", func() {
		for _, v := range velocities {
			for _, a := range accelerations {
				Expect(kinematics.NewVelocity(v, a, 0)).To(Equal(v))
			}
		}
	})

	It("adds exactly 12960 km/h for 1 m/s² sustained one hour", func() {
		Expect(kinematics.NewVelocity(0, 1, 3600)).To(Equal(12960.0))
	})

	DescribeTable("rejects invalid inputs",
		func(v, a, dt float64) {
			_, err := kinematics.NewVelocity(v, a, dt)
			Expect(err).To(MatchError(kinematics.ErrInvalidParameter))
		},
		Entry("negative velocity", -1.0, 3.0, 3600.0),
		Entry("negative acceleration", 1.0, -3.0, 3600.0),
		Entry("negative time", 1.0, 3.0, -3600.0),
		Entry("NaN", math.NaN(), 3.0, 3600.0),
		Entry("infinity", 1.0, 3.0, math.Inf(1)),
	)
})

var _ = Describe("RemainingFuel", func() {
	It("subtracts the burned mass", func() {
		Expect(kinematics.RemainingFuel(5000, 0.5, 3600)).To(Equal(3200.0))
	})

	It("refuses to go below zero", func() {
		_, err := kinematics.RemainingFuel(100, 1, 200)
		Expect(err).To(MatchError(kinematics.ErrInsufficientFuel))
		Expect(err).To(BeAssignableToTypeOf(&kinematics.InsufficientFuelError{}))
	})
})

var _ = Describe("Compute", func() {
	It("reproduces the reference scenario", func() {
		res, err := kinematics.Compute(kinematics.Params{
			Velocity:     10000,
			Acceleration: 3,
			ElapsedTime:  3600,
			InitialFuel:  5000,
			FuelBurnRate: 0.5,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(kinematics.Result{Velocity: 48880, Distance: 10000, Fuel: 3200}))
	})
})

var _ = Describe("overflowing results", func() {
	It("are reported instead of returned as infinity", func() {
		_, err := kinematics.NewVelocity(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
		Expect(err).To(MatchError(kinematics.ErrOutOfRange))

		_, err = kinematics.NewDistance(math.MaxFloat64, math.MaxFloat64, 36000)
		Expect(err).To(MatchError(kinematics.ErrOutOfRange))
	})
})
