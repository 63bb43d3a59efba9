package credentials_test

import (
	"portfolio/internal/credentials"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Hasher", func() {
	var hasher *credentials.Hasher

	BeforeEach(func() {
		hasher = credentials.NewHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("should never return the plaintext", func() {
			hash, err := hasher.Hash("arifin 123")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(Equal("arifin 123"))
			Expect(hash).To(HavePrefix("$2a$"))
		})

		It("should salt every hash", func() {
			first, err := hasher.Hash("arifin 123")
			Expect(err).NotTo(HaveOccurred())
			second, err := hasher.Hash("arifin 123")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should reject passwords bcrypt cannot hold", func() {
			_, err := hasher.Hash(strings.Repeat("x", 73))
			Expect(err).To(MatchError(ContainSubstring("hash password")))
		})
	})

	Describe("Verify", func() {
		var hash string

		BeforeEach(func() {
			var err error
			hash, err = hasher.Hash("arifin 123")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should accept the password it hashed", func() {
			Expect(hasher.Verify("arifin 123", hash)).To(BeTrue())
		})

		DescribeTable("should reject anything else",
			func(candidate string) {
				Expect(hasher.Verify(candidate, hash)).To(BeFalse())
			},
			Entry("wrong password", "wrong"),
			Entry("empty password", ""),
			Entry("no space", "arifin123"),
			Entry("trailing space", "arifin 123 "),
		)

		DescribeTable("should return false for malformed hashes",
			func(malformed string) {
				Expect(hasher.Verify("arifin 123", malformed)).To(BeFalse())
			},
			Entry("empty", ""),
			Entry("plaintext", "arifin 123"),
			Entry("truncated", "$2a$04$abc"),
			Entry("unknown version", "$9z$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky"),
		)
	})

	It("should fall back to the default cost for out of range values", func() {
		hash, err := credentials.NewHasher(99).Hash("pw")
		Expect(err).NotTo(HaveOccurred())

		cost, err := bcrypt.Cost([]byte(hash))
		Expect(err).NotTo(HaveOccurred())
		Expect(cost).To(Equal(bcrypt.DefaultCost))
	})
})
