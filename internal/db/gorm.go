package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConnection = errors.New("database unreachable")
	ErrQuery      = errors.New("database query failed")
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Options describe how to reach the relational store.
type Options struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	Name      string
	Charset   string
	Collation string
	Debug     bool
}

// GormDB is the store boundary. Every operation runs on its own pooled
// connection, acquired on entry and released before returning.
type GormDB struct {
	db      *gorm.DB
	options Options
}

func NewGormDB(opts Options) (*GormDB, error) {
	dialector, err := opts.dialector(true)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig(opts.Debug))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return New(db, opts), nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, opts Options) *GormDB {
	return &GormDB{
		db:      db,
		options: opts,
	}
}

func gormConfig(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gorm.Config{
		Logger:                 logger.Default.LogMode(level),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	}
}

func (o Options) dialector(withDatabase bool) (gorm.Dialector, error) {
	switch o.Driver {
	case DriverMySQL:
		cfg := mysqldriver.NewConfig()
		cfg.User = o.User
		cfg.Passwd = o.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
		cfg.ParseTime = true
		cfg.Collation = o.Collation
		cfg.Params = map[string]string{"charset": o.Charset}
		if withDatabase {
			cfg.DBName = o.Name
		}
		return mysql.Open(cfg.FormatDSN()), nil

	case DriverPostgres:
		name := "postgres"
		if withDatabase {
			name = o.Name
		}
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(o.User, o.Password),
			Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
			Path:     "/" + name,
			RawQuery: "sslmode=disable",
		}
		return postgres.Open(dsn.String()), nil

	case DriverSQLite:
		return sqlite.Open(o.Name), nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", o.Driver)
}

// withConn runs fn on a gorm session pinned to one connection and releases
// the connection on every path. Acquisition failures are reported as
// ErrConnection, statement failures as ErrQuery.
func (g *GormDB) withConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer conn.Close()

	tx := g.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = conn

	if err := fn(tx); err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return fmt.Errorf("%w: %w", ErrQuery, err)
}

// Ping checks that a connection can be acquired and answers.
func (g *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

func (g *GormDB) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureDatabase creates the configured database when it does not exist.
// It connects at server level, so it works before the database is there.
func (g *GormDB) EnsureDatabase(ctx context.Context) error {
	opts := g.options
	if opts.Driver == DriverSQLite {
		return nil
	}

	if !identifierRegex.MatchString(opts.Name) {
		return fmt.Errorf("invalid database name %q", opts.Name)
	}

	dialector, err := opts.dialector(false)
	if err != nil {
		return err
	}

	serverDB, err := gorm.Open(dialector, gormConfig(opts.Debug))
	if err != nil {
		return fmt.Errorf("%w: open server connection: %w", ErrConnection, err)
	}
	server := New(serverDB, opts)
	defer server.Close()

	return server.withConn(ctx, func(tx *gorm.DB) error {
		return createDatabase(tx, opts)
	})
}

func createDatabase(tx *gorm.DB, opts Options) error {
	switch opts.Driver {
	case DriverMySQL:
		if !identifierRegex.MatchString(opts.Charset) || !identifierRegex.MatchString(opts.Collation) {
			return fmt.Errorf("invalid charset %q or collation %q", opts.Charset, opts.Collation)
		}
		// identifiers were validated above, they cannot be bound as parameters
		query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET %s COLLATE %s",
			opts.Name, opts.Charset, opts.Collation)
		return tx.Exec(query).Error

	case DriverPostgres:
		var exists bool
		err := tx.Raw(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = ?)`, opts.Name).
			Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("check db exists: %w", err)
		}
		if exists {
			return nil
		}
		return tx.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, opts.Name)).Error
	}

	return fmt.Errorf("unsupported database driver %q", opts.Driver)
}

// MigrateModels creates missing tables, columns and indexes. Existing data
// is left untouched, so it is safe on every start.
func (g *GormDB) MigrateModels(ctx context.Context, models ...any) error {
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		return tx.AutoMigrate(models...)
	})
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (g *GormDB) Insert(ctx context.Context, record any) error {
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// InsertIgnoreConflict inserts record unless it collides with a unique key.
// It reports whether a row was written.
func (g *GormDB) InsertIgnoreConflict(ctx context.Context, record any) (bool, error) {
	var inserted bool
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
		inserted = res.RowsAffected > 0
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("insert to table: %w", err)
	}

	return inserted, nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		return tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(entity).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// FindAllDesc loads every row into dest ordered by the given columns,
// each descending.
func (g *GormDB) FindAllDesc(ctx context.Context, dest any, columns ...string) error {
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		for _, column := range columns {
			tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true})
		}
		return tx.Find(dest).Error
	})
	if err != nil {
		return fmt.Errorf("getting records: %w", err)
	}
	return nil
}

// DeleteByID removes the row of model with the given primary key and
// returns the number of rows removed.
func (g *GormDB) DeleteByID(ctx context.Context, model any, id any) (int64, error) {
	var affected int64
	err := g.withConn(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(model, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, fmt.Errorf("deleting record %v: %w", id, err)
	}
	return affected, nil
}
