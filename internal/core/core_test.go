package core_test

import (
	"context"
	"errors"
	"portfolio/internal/core"
	"portfolio/internal/core/fake"
	"portfolio/internal/db"
	"portfolio/internal/repository"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Portfolio", func() {
	var (
		fakeRepo   *fake.Repository
		fakeHasher *fake.PasswordHasher
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		portfolio *core.Portfolio

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeHasher = new(fake.PasswordHasher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		portfolio = core.NewPortfolio(fakeLogger, fakeRepo, fakeHasher)

		fakeErr = errors.New("fake error")
	})

	Describe("Initialize", func() {
		var (
			admin core.AdminAccount
			err   error
		)

		BeforeEach(func() {
			admin = core.AdminAccount{Username: "arifin123", Password: "arifin 123"}
			fakeHasher.HashReturns("hashed", nil)
		})

		JustBeforeEach(func() {
			err = portfolio.Initialize(ctx, admin)
		})

		When("the admin does not exist yet", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserIfAbsentReturns(true, nil)
			})

			It("should migrate and seed a hashed admin", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.MigrateTablesCallCount()).To(Equal(1))

				Expect(fakeHasher.HashCallCount()).To(Equal(1))
				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("arifin 123"))

				Expect(fakeRepo.CreateUserIfAbsentCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserIfAbsentArgsForCall(0)
				Expect(user.Username).To(Equal("arifin123"))
				Expect(user.PasswordHash).To(Equal("hashed"))
			})
		})

		When("the admin already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 1, Username: "arifin123"}, nil)
			})

			It("should leave the user table alone", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeHasher.HashCallCount()).To(BeZero())
				Expect(fakeRepo.CreateUserIfAbsentCallCount()).To(BeZero())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeRepo.MigrateTablesReturns(db.ErrConnection)
			})

			It("should stop and report the store error", func() {
				Expect(err).To(MatchError(core.ErrStoreUnavailable))
				Expect(fakeRepo.GetUserByUsernameCallCount()).To(BeZero())
			})
		})

		When("the admin lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should not try to seed", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserIfAbsentCallCount()).To(BeZero())
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("hash admin password: fake error"))
				Expect(fakeRepo.CreateUserIfAbsentCallCount()).To(BeZero())
			})
		})

		When("another process seeded the admin first", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserIfAbsentReturns(false, nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			account  core.Account
			username string
			password string
			err      error
		)

		BeforeEach(func() {
			username = "arifin123"
			password = "arifin 123"
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           7,
				Username:     "arifin123",
				PasswordHash: "stored-hash",
			}, nil)
		})

		JustBeforeEach(func() {
			account, err = portfolio.Authenticate(ctx, username, password)
		})

		When("the password matches", func() {
			BeforeEach(func() {
				fakeHasher.VerifyReturns(true)
			})

			It("should return the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account).To(Equal(core.Account{ID: 7, Username: "arifin123"}))

				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("arifin123"))

				argPassword, argHash := fakeHasher.VerifyArgsForCall(0)
				Expect(argPassword).To(Equal("arifin 123"))
				Expect(argHash).To(Equal("stored-hash"))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				password = "wrong"
				fakeHasher.VerifyReturns(false)
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(account).To(BeZero())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should not reveal that the user is unknown", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeHasher.VerifyCallCount()).To(BeZero())
			})
		})

		When("the store is unreachable", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, db.ErrConnection)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(core.ErrStoreUnavailable))
				Expect(err).NotTo(MatchError(core.ErrInvalidCredentials))
			})
		})
	})

	Describe("SubmitMessage", func() {
		It("should store the message as given", func() {
			fakeRepo.SaveMessageReturns(repository.Message{ID: 3}, nil)

			id, err := portfolio.SubmitMessage(ctx, core.ContactMessage{Name: "Bob", Email: "b@x.com", Message: "hello"})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(uint(3)))

			_, name, email, message := fakeRepo.SaveMessageArgsForCall(0)
			Expect(name).To(Equal("Bob"))
			Expect(email).To(Equal("b@x.com"))
			Expect(message).To(Equal("hello"))
		})

		It("should accept empty fields", func() {
			_, err := portfolio.SubmitMessage(ctx, core.ContactMessage{})
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.SaveMessageCallCount()).To(Equal(1))
		})

		It("should not retry on failure", func() {
			fakeRepo.SaveMessageReturns(repository.Message{}, db.ErrQuery)

			_, err := portfolio.SubmitMessage(ctx, core.ContactMessage{Name: "Bob"})
			Expect(err).To(MatchError(db.ErrQuery))
			Expect(fakeRepo.SaveMessageCallCount()).To(Equal(1))
		})
	})

	Describe("ListMessages", func() {
		It("should keep the store order", func() {
			now := time.Now()
			fakeRepo.GetAllMessagesReturns([]repository.Message{
				{ID: 3, Name: "t3", Timestamp: now},
				{ID: 2, Name: "t2", Timestamp: now.Add(-time.Minute)},
				{ID: 1, Name: "t1", Timestamp: now.Add(-time.Hour)},
			}, nil)

			records, err := portfolio.ListMessages(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0]).To(Equal(core.MessageRecord{ID: 3, Name: "t3", Timestamp: now}))
			Expect(records[2].Name).To(Equal("t1"))
		})

		It("should return an empty list when there are no messages", func() {
			fakeRepo.GetAllMessagesReturns([]repository.Message{}, nil)

			records, err := portfolio.ListMessages(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
			Expect(records).NotTo(BeNil())
		})

		It("should return the store error", func() {
			fakeRepo.GetAllMessagesReturns(nil, db.ErrConnection)

			_, err := portfolio.ListMessages(ctx)
			Expect(err).To(MatchError(core.ErrStoreUnavailable))
		})
	})

	Describe("DeleteMessage", func() {
		It("should treat a missing id as success", func() {
			fakeRepo.DeleteMessageReturns(false, nil)

			removed, err := portfolio.DeleteMessage(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())

			_, id := fakeRepo.DeleteMessageArgsForCall(0)
			Expect(id).To(Equal(uint(42)))
		})

		It("should return the store error", func() {
			fakeRepo.DeleteMessageReturns(false, fakeErr)

			_, err := portfolio.DeleteMessage(ctx, 42)
			Expect(err).To(MatchError("delete message 42: fake error"))
		})
	})
})
