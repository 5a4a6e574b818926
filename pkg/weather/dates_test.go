package weather_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zoryamba/wezza/pkg/weather"
)

func TestWeather(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Weather Suite")
}

var _ = Describe("DaysFromToday", func() {
	It("returns zero for today", func() {
		Expect(weather.DaysFromToday(weather.Today())).To(Equal(0))
	})

	It("returns one for tomorrow", func() {
		Expect(weather.DaysFromToday(weather.Today().AddDate(0, 0, 1))).To(Equal(1))
	})

	It("returns fourteen for two weeks ahead", func() {
		Expect(weather.DaysFromToday(weather.Today().AddDate(0, 0, 14))).To(Equal(14))
	})

	It("returns a negative count for past dates", func() {
		Expect(weather.DaysFromToday(weather.Today().AddDate(0, 0, -1))).To(Equal(-1))
	})

	It("counts calendar days across DST transitions, not 24-hour periods", func() {
		// Chile springs forward in early September, shortening one local
		// day to 23 hours. Counting hours would come up one day short for
		// every date past the transition.
		loc, err := time.LoadLocation("America/Santiago")
		Expect(err).NotTo(HaveOccurred())

		orig := time.Local
		time.Local = loc
		DeferCleanup(func() { time.Local = orig })

		for n := 1; n <= 20; n++ {
			Expect(weather.DaysFromToday(weather.Today().AddDate(0, 0, n))).To(Equal(n))
		}
	})
})

var _ = Describe("Unit", func() {
	It("renders display symbols", func() {
		Expect(weather.Celsius.Symbol()).To(Equal("°C"))
		Expect(weather.Fahrenheit.Symbol()).To(Equal("°F"))
	})
})
