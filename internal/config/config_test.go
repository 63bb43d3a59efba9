package config_test

import (
	"os"
	"portfolio/internal/config"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var envKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_CHARSET", "DB_COLLATION", "SECRET_KEY", "APP_ENV", "APP_HOST",
	"APP_PORT", "LOG_LEVEL", "LOG_FILE", "SESSION_TTL", "COOKIE_SECURE",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "CONTENT_FILE", "CORS_ALLOWED_ORIGINS",
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		for _, key := range envKeys {
			if old, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, old)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("no variables are set", func() {
		It("should fall back to the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.DB).To(Equal(config.Database{
				Driver:    config.DriverMySQL,
				Host:      "localhost",
				Port:      3306,
				User:      "root",
				Password:  "",
				Name:      "portfolio_db",
				Charset:   "utf8mb4",
				Collation: "utf8mb4_unicode_ci",
			}))
			Expect(app.SecretKey).To(Equal(config.DefaultSecretKey))
			Expect(app.UsesDefaultSecret()).To(BeTrue())
			Expect(app.Debug).To(BeTrue())
			Expect(app.Addr()).To(Equal("0.0.0.0:5000"))
			Expect(app.LogLevel).To(Equal(zapcore.InfoLevel))
			Expect(app.LogFile).To(Equal("logs/app.log"))
			Expect(app.SessionTTL).To(Equal(24 * time.Hour))
			Expect(app.CookieSecure).To(BeFalse())
			Expect(app.AdminUsername).To(Equal("arifin123"))
			Expect(app.AdminPassword).To(Equal("arifin 123"))
			Expect(app.ContentFile).To(BeEmpty())
			Expect(app.CORSOrigins).To(BeEmpty())
		})
	})

	When("variables are set", func() {
		BeforeEach(func() {
			setEnv("DB_DRIVER", "postgres")
			setEnv("DB_HOST", "db.internal")
			setEnv("DB_NAME", "site")
			setEnv("SECRET_KEY", "s3cr3t")
			setEnv("APP_ENV", "production")
			setEnv("APP_PORT", "8080")
			setEnv("LOG_LEVEL", "WARNING")
			setEnv("SESSION_TTL", "90m")
			setEnv("COOKIE_SECURE", "true")
			setEnv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.DB.Driver).To(Equal(config.DriverPostgres))
			Expect(app.DB.Port).To(Equal(5432))
			Expect(app.DB.Host).To(Equal("db.internal"))
			Expect(app.DB.Name).To(Equal("site"))
			Expect(app.UsesDefaultSecret()).To(BeFalse())
			Expect(app.Debug).To(BeFalse())
			Expect(app.Port).To(Equal(8080))
			Expect(app.LogLevel).To(Equal(zapcore.WarnLevel))
			Expect(app.SessionTTL).To(Equal(90 * time.Minute))
			Expect(app.CookieSecure).To(BeTrue())
			Expect(app.CORSOrigins).To(Equal([]string{"https://a.example", "https://b.example"}))
		})
	})

	DescribeTable("rejecting invalid values",
		func(key, value string) {
			setEnv(key, value)
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring(key)))
		},
		Entry("unknown driver", "DB_DRIVER", "oracle"),
		Entry("non-numeric port", "APP_PORT", "http"),
		Entry("database name with quotes", "DB_NAME", "x`; DROP"),
		Entry("charset with spaces", "DB_CHARSET", "utf8 mb4"),
		Entry("unknown log level", "LOG_LEVEL", "LOUD"),
		Entry("bad session ttl", "SESSION_TTL", "forever"),
		Entry("bad cookie flag", "COOKIE_SECURE", "maybe"),
		Entry("empty secret", "SECRET_KEY", ""),
	)
})
