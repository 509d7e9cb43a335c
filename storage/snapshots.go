package storage

import "time"

// LeaderboardSnapshot archives one computed leaderboard so ranking
// history survives restarts. Payload is the JSON-encoded wallet list.
type LeaderboardSnapshot struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	Wallets   int
	Payload   []byte `gorm:"type:blob"`
}

func (LeaderboardSnapshot) TableName() string {
	return "leaderboard_snapshots"
}

func (c *DBClient) SaveSnapshot(s *LeaderboardSnapshot) error {
	return c.DB.Create(s).Error
}

func (c *DBClient) LastSnapshot() (*LeaderboardSnapshot, error) {
	var s LeaderboardSnapshot
	err := c.DB.Order("id desc").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// PruneSnapshots keeps the newest keep rows and deletes the rest.
func (c *DBClient) PruneSnapshots(keep int) error {
	var cutoff LeaderboardSnapshot
	err := c.DB.Order("id desc").Offset(keep).First(&cutoff).Error
	if err != nil {
		return nil
	}
	return c.DB.Where("id <= ?", cutoff.ID).Delete(&LeaderboardSnapshot{}).Error
}
