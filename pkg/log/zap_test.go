package log_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"portfolio/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("NewZapLogger", func() {
	It("should write JSON entries to the log file, creating its directory", func() {
		path := filepath.Join(GinkgoT().TempDir(), "logs", "app.log")

		logger, err := log.NewZapLogger("portfolio", zapcore.InfoLevel, path)
		Expect(err).NotTo(HaveOccurred())

		logger.Debugw("hidden")
		logger.Infow("started", "port", 5000)
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		var entry map[string]any
		Expect(json.Unmarshal(data, &entry)).To(Succeed())
		Expect(entry["msg"]).To(Equal("started"))
		Expect(entry["logger"]).To(Equal("portfolio"))
		Expect(entry["port"]).To(BeEquivalentTo(5000))
		Expect(entry).To(HaveKey("time"))
	})

	It("should skip empty outputs", func() {
		_, err := log.NewZapLogger("portfolio", zapcore.WarnLevel, "")
		Expect(err).NotTo(HaveOccurred())
	})
})
