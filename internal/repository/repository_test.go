package repository_test

import (
	"context"
	"errors"
	"portfolio/internal/db"
	"portfolio/internal/repository"
	"portfolio/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PortfolioRepository", func() {
	var (
		repo        *repository.PortfolioRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPortfolioRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables(ctx)
		})

		When("migration succeeds", func() {
			It("should ensure the database and migrate both tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.EnsureDatabaseCallCount()).To(Equal(1))
				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				_, tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Message{}))
			})
		})

		When("the database cannot be ensured", func() {
			BeforeEach(func() {
				fakeStorage.EnsureDatabaseReturns(fakeErr)
			})

			It("should stop before migrating", func() {
				Expect(err).To(MatchError("ensure database: fake error"))
				Expect(fakeStorage.MigrateModelsCallCount()).To(BeZero())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "arifin123")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					u := entity.(*repository.User)
					u.ID = 1
					u.Username = value.(string)
					return nil
				}
			})

			It("should look the user up by username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))
				Expect(user.Username).To(Equal("arifin123"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("arifin123"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(Equal(repository.ErrUserNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrConnection)
			})

			It("should keep the store error kind", func() {
				Expect(err).To(MatchError(db.ErrConnection))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUserIfAbsent", func() {
		It("should pass the user through and report the insert", func() {
			fakeStorage.InsertIgnoreConflictReturns(true, nil)

			created, err := repo.CreateUserIfAbsent(ctx, repository.User{Username: "arifin123", PasswordHash: "hash"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			_, record := fakeStorage.InsertIgnoreConflictArgsForCall(0)
			Expect(record).To(Equal(&repository.User{Username: "arifin123", PasswordHash: "hash"}))
		})

		It("should wrap store failures", func() {
			fakeStorage.InsertIgnoreConflictReturns(false, fakeErr)

			_, err := repo.CreateUserIfAbsent(ctx, repository.User{Username: "arifin123"})
			Expect(err).To(MatchError(`create user "arifin123": fake error`))
		})
	})

	Describe("SaveMessage", func() {
		It("should insert the message without a caller timestamp", func() {
			fakeStorage.InsertStub = func(_ context.Context, record any) error {
				record.(*repository.Message).ID = 9
				return nil
			}

			msg, err := repo.SaveMessage(ctx, "Bob", "b@x.com", "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).To(Equal(uint(9)))
			Expect(msg.Name).To(Equal("Bob"))

			_, record := fakeStorage.InsertArgsForCall(0)
			Expect(record.(*repository.Message).Timestamp.IsZero()).To(BeTrue())
		})

		It("should return the error unmodified in kind", func() {
			fakeStorage.InsertReturns(db.ErrQuery)

			_, err := repo.SaveMessage(ctx, "Bob", "b@x.com", "hello")
			Expect(err).To(MatchError(db.ErrQuery))
		})
	})

	Describe("GetAllMessages", func() {
		It("should order by timestamp then id, both descending", func() {
			messages, err := repo.GetAllMessages(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(BeEmpty())
			Expect(messages).NotTo(BeNil())

			_, _, columns := fakeStorage.FindAllDescArgsForCall(0)
			Expect(columns).To(Equal([]string{"timestamp", "id"}))
		})

		It("should return an error when the query fails", func() {
			fakeStorage.FindAllDescReturns(fakeErr)

			messages, err := repo.GetAllMessages(ctx)
			Expect(err).To(MatchError("get all messages: fake error"))
			Expect(messages).To(BeNil())
		})
	})

	Describe("DeleteMessage", func() {
		It("should report whether a row was removed", func() {
			fakeStorage.DeleteByIDReturnsOnCall(0, 1, nil)
			fakeStorage.DeleteByIDReturnsOnCall(1, 0, nil)

			removed, err := repo.DeleteMessage(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())

			removed, err = repo.DeleteMessage(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())

			_, model, id := fakeStorage.DeleteByIDArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Message{}))
			Expect(id).To(Equal(uint(3)))
		})
	})
})
