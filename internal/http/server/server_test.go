package server_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"portfolio/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	var addr string

	BeforeEach(func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr = l.Addr().String()
		Expect(l.Close()).To(Succeed())
	})

	It("should serve until shut down", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "ok")
		}), addr)

		errChan := srv.Run()

		Eventually(func() (string, error) {
			resp, err := http.Get("http://" + addr + "/")
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).Should(Equal("ok"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report listen failures", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "invalid-address")

		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
