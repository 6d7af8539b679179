//go:build integration

package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/donation-checkout/internal/app"
	"github.com/you-humble/donation-checkout/internal/converter"
	"github.com/you-humble/donation-checkout/platform/closer"
	"github.com/you-humble/donation-checkout/platform/logger"
	"github.com/you-humble/donation-checkout/platform/testcontainers"
	kafkatc "github.com/you-humble/donation-checkout/platform/testcontainers/kafka"
)

const (
	shopSlug      = "it-shop"
	webhookTopic  = "cartpanda.webhook.events"
	successPage   = "https://donate.example.org/thanks"
	errorPage     = "https://donate.example.org/error"
	paidOrderID   = "1001"
	unpaidOrderID = "1002"
)

var (
	ctx context.Context

	kafkaC   *kafkatc.Container
	provider *fakeProvider
	upstream *httptest.Server
	api      *httptest.Server
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Donation Checkout Integration Suite")
}

// fakeProvider mimics the v3 order API.
type fakeProvider struct {
	mu     sync.Mutex
	orders []map[string]any
}

func (p *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer it-key" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	prefix := "/v3/" + shopSlug + "/order"
	switch {
	case r.Method == http.MethodPost && r.URL.Path == prefix:
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		p.mu.Lock()
		p.orders = append(p.orders, body)
		p.mu.Unlock()
		_, _ = w.Write([]byte(`{"data":{"id":` + paidOrderID + `}}`))
	case r.Method == http.MethodGet && r.URL.Path == prefix+"/"+paidOrderID:
		_, _ = w.Write([]byte(`{"data":{"id":` + paidOrderID + `,"status":"paid"}}`))
	case r.Method == http.MethodGet && r.URL.Path == prefix+"/"+unpaidOrderID:
		_, _ = w.Write([]byte(`{"data":{"id":` + unpaidOrderID + `,"status":"pending"}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (p *fakeProvider) lastOrder() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.orders) == 0 {
		return nil
	}
	return p.orders[len(p.orders)-1]
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting kafka container (cp-kafka)")
	var err error
	kafkaC, err = kafkatc.NewContainer(ctx,
		kafkatc.WithTopics(webhookTopic),
		kafkatc.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())

	By("starting fake cartpanda")
	provider = &fakeProvider{}
	upstream = httptest.NewServer(provider)

	By("setting env for app config")
	env := map[string]string{
		"LOGGER_LEVEL":                       "error",
		"CARTPANDA_API_KEY":                  "it-key",
		"CARTPANDA_SHOP_SLUG":                shopSlug,
		"CARTPANDA_BASE_URL":                 upstream.URL,
		"CARTPANDA_API_VERSION":              "v3",
		"CHECKOUT_RETURN_URL":                "https://donate.example.org/cartpanda_return",
		"SUCCESS_PAGE_URL":                   successPage,
		"ERROR_PAGE_URL":                     errorPage,
		"ADDRESS_STRATEGY":                   "country",
		"DEFAULT_COUNTRY":                    "NL",
		testcontainers.KafkaEnabledKey:       "true",
		testcontainers.KafkaBrokersKey:       strings.Join(kafkaC.Brokers(), ","),
		testcontainers.WebhookEventsTopicKey: webhookTopic,
	}
	for k, v := range env {
		Expect(os.Setenv(k, v)).To(Succeed())
	}

	By("building the application")
	a, err := app.New(ctx)
	Expect(err).NotTo(HaveOccurred())
	logger.SetNopLogger()

	api = httptest.NewServer(a.Handler())
})

var _ = AfterSuite(func() {
	if api != nil {
		api.Close()
	}
	if upstream != nil {
		upstream.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = closer.CloseAll(shutdownCtx)

	if kafkaC != nil {
		_ = kafkaC.Terminate(ctx)
	}
})

var _ = Describe("Donation checkout", func() {
	noRedirect := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	It("answers health checks", func() {
		resp, err := http.Get(api.URL + "/health")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("status", "OK"))
	})

	It("creates an order and returns a synthesized checkout url", func() {
		resp, err := http.Post(api.URL+"/create-donation-order", "application/json", strings.NewReader(
			`{"donationAmount":"15","variantId":321,"fullName":"Jan de Vries","email":"jan@example.org","country":"BE"}`,
		))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("checkoutUrl",
			"https://"+shopSlug+".mycartpanda.com/checkout?order_id="+paidOrderID))

		order := provider.lastOrder()
		Expect(order).NotTo(BeNil())
		Expect(order).To(HaveKeyWithValue("currency", "EUR"))
		Expect(order).To(HaveKeyWithValue("total_amount", "15.00"))
		Expect(order["billing_address"]).To(HaveKeyWithValue("country", "Belgium"))
		Expect(order["customer"]).To(HaveKeyWithValue("last_name", "de Vries"))
	})

	It("rejects a non-positive amount without calling the provider", func() {
		before := provider.lastOrder()

		resp, err := http.Post(api.URL+"/create-donation-order", "application/json", strings.NewReader(
			`{"donationAmount":"-1","variantId":"321","fullName":"Jan","email":"jan@example.org"}`,
		))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(provider.lastOrder()).To(Equal(before))
	})

	DescribeTable("redirects after checkout",
		func(query, want string) {
			resp, err := noRedirect.Get(api.URL + "/cartpanda_return" + query)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusFound))
			Expect(resp.Header.Get("Location")).To(Equal(want))
		},
		Entry("paid order", "?order_id="+paidOrderID, successPage),
		Entry("pending order", "?order_id="+unpaidOrderID, errorPage),
		Entry("unknown order", "?order_id=9999", errorPage),
		Entry("missing order id", "", errorPage),
	)

	It("publishes webhook events to kafka", func() {
		cfg := sarama.NewConfig()
		cfg.Version = sarama.V4_0_0_0
		consumer, err := sarama.NewConsumer(kafkaC.Brokers(), cfg)
		Expect(err).NotTo(HaveOccurred())
		defer consumer.Close()

		pc, err := consumer.ConsumePartition(webhookTopic, 0, sarama.OffsetOldest)
		Expect(err).NotTo(HaveOccurred())
		defer pc.Close()

		resp, err := http.Post(api.URL+"/cartpanda-webhook", "application/json", strings.NewReader(
			`{"event":"order.paid","order":{"id":`+paidOrderID+`}}`,
		))
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var msg *sarama.ConsumerMessage
		Eventually(pc.Messages()).WithTimeout(15 * time.Second).Should(Receive(&msg))

		event, err := converter.NewKafkaConverter().PayloadToProviderEvent(msg.Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(event).To(SatisfyAll(
			HaveField("Type", "order.paid"),
			HaveField("OrderID", paidOrderID),
		))
		Expect(msg.Key).To(Equal(event.ID[:]))
	})

	It("answers 500 to a webhook that is not JSON", func() {
		resp, err := http.Post(api.URL+"/cartpanda-webhook", "text/plain", strings.NewReader("ping"))
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
	})
})
