package payload_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"portfolio/internal/core"
	"portfolio/internal/http/payload"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	Describe("DecodeJSONPayload", func() {
		var (
			body    string
			contact payload.ContactRequest
			err     error
		)

		JustBeforeEach(func() {
			contact = payload.ContactRequest{}
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
			err = decoder.DecodeJSONPayload(req, &contact)
		})

		When("the body is a valid contact message", func() {
			BeforeEach(func() {
				body = `{"name":"Bob","email":"b@x.com","message":"hello"}`
			})

			It("should decode it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(contact.ToContactMessage()).To(Equal(core.ContactMessage{
					Name:    "Bob",
					Email:   "b@x.com",
					Message: "hello",
				}))
			})
		})

		DescribeTable("invalid bodies",
			func(raw, message string) {
				req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(raw))
				err := decoder.DecodeJSONPayload(req, &payload.ContactRequest{})
				Expect(err).To(MatchError(ContainSubstring(message)))
			},
			Entry("empty body", ``, "empty body"),
			Entry("not json", `name=Bob`, "decoding json payload"),
			Entry("unknown field", `{"name":"Bob","email":"b@x.com","message":"hi","admin":true}`, "unknown field"),
			Entry("missing name", `{"email":"b@x.com","message":"hi"}`, "name: cannot be blank"),
			Entry("bad email", `{"name":"Bob","email":"not-an-email","message":"hi"}`, "email: must be a valid email address"),
			Entry("missing message", `{"name":"Bob","email":"b@x.com"}`, "message: cannot be blank"),
			Entry("long name", `{"name":"`+strings.Repeat("a", 256)+`","email":"b@x.com","message":"hi"}`, "name: the length must be between 1 and 255"),
		)
	})

	Describe("DecodeFormPayload", func() {
		newRequest := func(form url.Values) *http.Request {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			return req
		}

		It("should read the credentials, spaces included", func() {
			var login payload.LoginRequest
			err := decoder.DecodeFormPayload(newRequest(url.Values{
				"username": {"arifin123"},
				"password": {"arifin 123"},
			}), &login)
			Expect(err).NotTo(HaveOccurred())
			Expect(login).To(Equal(payload.LoginRequest{Username: "arifin123", Password: "arifin 123"}))
		})

		It("should require both fields", func() {
			var login payload.LoginRequest
			err := decoder.DecodeFormPayload(newRequest(url.Values{"username": {"arifin123"}}), &login)
			Expect(err).To(MatchError(ContainSubstring("Password: cannot be blank")))
		})
	})
})
