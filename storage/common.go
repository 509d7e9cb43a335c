package storage

import (
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBClient wraps the gorm handle used for the known-wallet registry and
// leaderboard snapshot history.
type DBClient struct {
	DB  *gorm.DB
	log *zap.SugaredLogger
}

func NewSqliteClient(dbFile string, log *zap.SugaredLogger) (*DBClient, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	c := &DBClient{DB: db, log: log}
	if err := c.migrate(); err != nil {
		return nil, err
	}
	return c, nil
}

func NewMysqlClient(dsn string, log *zap.SugaredLogger) (*DBClient, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	c := &DBClient{DB: db, log: log}
	if err := c.migrate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *DBClient) migrate() error {
	if err := c.DB.AutoMigrate(&KnownWallet{}, &LeaderboardSnapshot{}); err != nil {
		return err
	}
	return c.seedWallets()
}

func (c *DBClient) Stop() {
	if sqlDB, err := c.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
