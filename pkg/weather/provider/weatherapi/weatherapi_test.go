package weatherapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/weather"
	"github.com/zoryamba/wezza/pkg/weather/provider/weatherapi"
)

func TestWeatherAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "WeatherAPI Suite")
}

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		handler  http.HandlerFunc
		requests int
		cred     credentials.Record
	)

	BeforeEach(func() {
		requests = 0
		cred = credentials.Record{APIKey: "test-key"}
		handler = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no handler installed", http.StatusInternalServerError)
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func() *weatherapi.Client {
		return weatherapi.New(server.URL, 0)
	}

	todayPayload := func() string {
		return fmt.Sprintf(`{
			"location": {"name": "Kyiv", "country": "Ukraine"},
			"forecast": {"forecastday": [
				{"date": %q, "day": {"maxtemp_c": 21.5, "mintemp_c": 11.2,
					"condition": {"text": "Partly cloudy"}}}
			]}
		}`, weather.Today().Format(weather.DateLayout))
	}

	It("fetches and normalizes a forecast for today", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/forecast.json"))
			Expect(r.URL.Query().Get("key")).To(Equal("test-key"))
			Expect(r.URL.Query().Get("q")).To(Equal("Kyiv, Ukraine"))
			Expect(r.URL.Query().Get("days")).To(Equal("1"))
			fmt.Fprint(w, todayPayload())
		}

		f, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Provider).To(Equal("weatherapi"))
		Expect(f.Location).To(Equal("Kyiv, Ukraine"))
		Expect(f.Date).To(Equal(weather.Today()))
		Expect(f.Summary).To(Equal("Partly cloudy"))
		Expect(f.TempMin).To(Equal(11.2))
		Expect(f.TempMax).To(Equal(21.5))
		Expect(f.Unit).To(Equal(weather.Celsius))
	})

	It("rejects dates beyond the 14-day horizon without calling out", func() {
		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today().AddDate(0, 0, 14),
		})
		Expect(err).To(MatchError(weather.ErrUnsupportedDate))
		Expect(requests).To(BeZero())
	})

	It("rejects past dates without calling out", func() {
		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today().AddDate(0, 0, -1),
		})
		Expect(err).To(MatchError(weather.ErrUnsupportedDate))
		Expect(requests).To(BeZero())
	})

	It("accepts the last day inside the horizon", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Query().Get("days")).To(Equal("14"))
			// Short payload: client reports it as unexpected, but the
			// horizon check itself must pass.
			fmt.Fprint(w, `{"location": {}, "forecast": {"forecastday": []}}`)
		}

		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today().AddDate(0, 0, 13),
		})
		Expect(err).To(MatchError(weather.ErrUnexpectedResponse))
		Expect(requests).To(Equal(1))
	})

	It("maps a 401 to ErrAuthenticationFailed", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": {"code": 2006, "message": "API key is invalid."}}`)
		}

		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today(),
		})
		Expect(err).To(MatchError(weather.ErrAuthenticationFailed))
	})

	It("maps error code 1006 to ErrLocationNotFound", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"code": 1006, "message": "No matching location found."}}`)
		}

		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Nowhere, Nowhereland",
			Date:     weather.Today(),
		})
		Expect(err).To(MatchError(weather.ErrLocationNotFound))
	})

	It("maps a malformed payload to ErrUnexpectedResponse", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"location": `)
		}

		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today(),
		})
		Expect(err).To(MatchError(weather.ErrUnexpectedResponse))
	})

	It("rejects a payload whose date does not match the request", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, todayPayload())
		}

		_, err := newClient().Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today().AddDate(0, 0, 1),
		})
		Expect(err).To(MatchError(weather.ErrUnexpectedResponse))
	})

	It("maps a connection failure to ErrTransportFailure", func() {
		client := newClient()
		server.Close()

		_, err := client.Fetch(context.Background(), cred, weather.Query{
			Location: "Kyiv, Ukraine",
			Date:     weather.Today(),
		})
		Expect(err).To(MatchError(weather.ErrTransportFailure))
	})
})
