package cron

import (
	"context"
	"fmt"
	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"kerala-tours/catalog"
	"kerala-tours/common/vars"
	"kerala-tours/model"
	"kerala-tours/outbound/sqlgen"
	"log/slog"
	"testing"
	"time"
)

const countPaidBookingsQuery = `SELECT package_id, COUNT\(\*\) AS total FROM bookings WHERE status = 'paid' GROUP BY package_id`

type PackageCronTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Cache     *redis.Client
	CacheMock redismock.ClientMock

	Cfg     *viper.Viper
	Catalog *catalog.Catalog
}

func (s *PackageCronTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	rdb, mock := redismock.NewClientMock()
	s.Cache = rdb
	s.CacheMock = mock

	s.Cfg = viper.New()
	s.Cfg.Set("cron.package.refresh.interval", "5s")
	s.Cfg.Set("cron.package.refresh.timeout", "10s")

	s.Catalog = catalog.New([]model.TourPackage{
		{Id: "1", Title: "Package 1"},
		{Id: "2", Title: "Package 2"},
	})

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *PackageCronTestSuite) TearDownTest() {
	s.PgxMock.Close()

	if err := s.Cache.Close(); err != nil {
		s.T().Fatalf("failed to close redis mock: %v", err)
	}

	vars.SetBookingCounts(nil)
}

func TestPackageCronTestSuite(t *testing.T) {
	suite.Run(t, new(PackageCronTestSuite))
}

func (s *PackageCronTestSuite) newCron() PackageCron {
	return PackageCron{
		Cfg:     s.Cfg,
		Cache:   s.Cache,
		Querier: s.Querier,
		Catalog: s.Catalog,
	}
}

func (s *PackageCronTestSuite) TestRefresh() {
	tests := []struct {
		name           string
		setupMock      func()
		expectedResult map[string]int64
	}{
		{
			name: "cache error",
			setupMock: func() {
				s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
					SetErr(redis.ErrClosed)
			},
			expectedResult: nil,
		},
		{
			name: "missing counters",
			setupMock: func() {
				s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
					SetVal([]interface{}{nil, nil})
			},
			expectedResult: nil,
		},
		{
			name: "actual counts",
			setupMock: func() {
				s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
					SetVal([]interface{}{"50", nil})
			},
			expectedResult: map[string]int64{"1": 50},
		},
		{
			name: "invalid count value",
			setupMock: func() {
				s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
					SetVal([]interface{}{"not-a-number", "75"})
			},
			expectedResult: nil,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			vars.SetBookingCounts(nil)

			tc.setupMock()

			s.newCron().refresh(context.Background())

			s.Equal(tc.expectedResult, vars.GetBookingCounts())
			s.NoError(s.CacheMock.ExpectationsWereMet())
		})
	}
}

func (s *PackageCronTestSuite) TestStart() {
	s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
		SetVal([]interface{}{"50", "75"})

	s.Cfg.Set("cron.package.refresh.interval", "200ms")

	packageCron := s.newCron()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		packageCron.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	s.Equal(map[string]int64{"1": 50, "2": 75}, vars.GetBookingCounts())

	s.CacheMock.ExpectMGet("package:1:bookings", "package:2:bookings").
		SetVal([]interface{}{"60", "85"})

	time.Sleep(250 * time.Millisecond)

	s.Equal(map[string]int64{"1": 60, "2": 85}, vars.GetBookingCounts())

	cancel()

	time.Sleep(100 * time.Millisecond)

	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func (s *PackageCronTestSuite) TestInitBookingCountCache() {
	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "database error",
			setupMock: func() {
				s.PgxMock.ExpectQuery(countPaidBookingsQuery).
					WillReturnError(fmt.Errorf("database error"))
			},
			wantErr: true,
		},
		{
			name: "no paid bookings",
			setupMock: func() {
				s.PgxMock.ExpectQuery(countPaidBookingsQuery).
					WillReturnRows(pgxmock.NewRows([]string{"package_id", "total"}))
			},
			wantErr: false,
		},
		{
			name: "redis pipeline error",
			setupMock: func() {
				rows := pgxmock.NewRows([]string{"package_id", "total"}).
					AddRow("1", int64(50)).
					AddRow("2", int64(75))

				s.PgxMock.ExpectQuery(countPaidBookingsQuery).
					WillReturnRows(rows)

				s.CacheMock.ExpectTxPipeline()
				s.CacheMock.ExpectSetNX("package:1:bookings", int64(50), 0).SetVal(true)
				s.CacheMock.ExpectSetNX("package:2:bookings", int64(75), 0).SetVal(true)
				s.CacheMock.ExpectTxPipelineExec().SetErr(redis.ErrClosed)
			},
			wantErr: true,
		},
		{
			name: "success",
			setupMock: func() {
				rows := pgxmock.NewRows([]string{"package_id", "total"}).
					AddRow("1", int64(50)).
					AddRow("2", int64(75))

				s.PgxMock.ExpectQuery(countPaidBookingsQuery).
					WillReturnRows(rows)

				s.CacheMock.ExpectTxPipeline()
				s.CacheMock.ExpectSetNX("package:1:bookings", int64(50), 0).SetVal(true)
				s.CacheMock.ExpectSetNX("package:2:bookings", int64(75), 0).SetVal(false)
				s.CacheMock.ExpectTxPipelineExec()
			},
			wantErr: false,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			err := s.newCron().InitBookingCountCache(context.Background())

			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}

			s.NoError(s.CacheMock.ExpectationsWereMet())
			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
