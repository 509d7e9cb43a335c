package storage

import "gorm.io/gorm/clause"

// KnownWallet is a curated trader wallet tracked by the leaderboard.
type KnownWallet struct {
	ID      uint   `gorm:"primarykey" json:"-"`
	Address string `gorm:"uniqueIndex;size:64" json:"address"`
	Name    string `gorm:"size:64" json:"name"`
	Twitter string `gorm:"size:128" json:"twitter"`
	Image   string `gorm:"size:128" json:"image"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (KnownWallet) TableName() string {
	return "known_wallets"
}

var defaultKnownWallets = []KnownWallet{
	{Address: "CyaE1VxvBrahnPWkqm5VsdCvyS2QmNht2UFrKJHga54o", Name: "Cented", Twitter: "https://x.com/Cented7", Image: "/kols/cented.jpg", Enabled: true},
	{Address: "4BdKaxN8G6ka4GYtQQWk4G4dZRUTX2vQH9GcXdBREFUk", Name: "Jijo", Twitter: "https://x.com/jijo_exe", Image: "/kols/jijo.jpg", Enabled: true},
	{Address: "3kebnKw7cPdSkLRfiMEALyZJGZ4wdiSRvmoN4rD1yPzV", Name: "Bastille", Twitter: "https://x.com/BastilleBtc", Image: "/kols/Bastille.jpg", Enabled: true},
	{Address: "2fg5QD1eD7rzNNCsvnhmXFm5hqNgwTTG8p7kQ6f3rx6f", Name: "Cupsey", Twitter: "https://x.com/Cupseyy", Image: "/kols/Cupsey.jpg", Enabled: true},
	{Address: "Bi4rd5FH5bYEN8scZ7wevxNZyNmKHdaBcvewdPFxYdLt", Name: "Theo", Twitter: "https://x.com/theonomix", Image: "/kols/Theo.jpg", Enabled: true},
	{Address: "Ez2jp3rwXUbaTx7XwiHGaWVgTPFdzJoSg8TopqbxfaJN", Name: "Keano", Twitter: "https://x.com/nftkeano", Image: "/kols/Keano.jpg", Enabled: true},
	{Address: "Be24Gbf5KisDk1LcWWZsBn8dvB816By7YzYF5zWZnRR6", Name: "Chairman", Twitter: "https://x.com/Chairman_DN", Image: "/kols/Chairman.jpg", Enabled: true},
	{Address: "GNrmKZCxYyNiSUsjduwwPJzhed3LATjciiKVuSGrsHEC", Name: "Giann", Twitter: "https://x.com/Giann2K", Image: "/kols/Giann.jpg", Enabled: true},
	{Address: "57rXqaQsvgyBKwebP2StfqQeCBjBS4jsrZFJN5aU2V9b", Name: "ram", Twitter: "https://x.com/0xRamonos", Image: "/kols/ram.png", Enabled: true},
	{Address: "5dzH7gh5FjtrxUwtfBufJyTBA4fyCUGheZsdYQsE9vag", Name: "Hermes", Twitter: "https://x.com/coinsolmaxi", Image: "/kols/Hermes.jpg", Enabled: true},
	{Address: "DYAn4XpAkN5mhiXkRB7dGq4Jadnx6XYgu8L5b3WGhbrt", Name: "The Doc", Twitter: "https://x.com/KayTheDoc", Image: "/kols/Doc.jpg", Enabled: true},
	{Address: "8oQoMhfBQnRspn7QtNAq2aPThRE4q94kLSTwaaFQvRgs", Name: "big bags Bobby", Twitter: "https://x.com/bigbagsbobby", Image: "/kols/bobby.jpg", Enabled: true},
	{Address: "3BLjRcxWGtR7WRshJ3hL25U3RjWr5Ud98wMcczQqk4Ei", Name: "Sebastian", Twitter: "https://x.com/Saint_pablo123", Image: "/kols/Sebastian.jpg", Enabled: true},
	{Address: "4ZdCpHJrSn4E9GmfP8jjfsAExHGja2TEn4JmXfEeNtyT", Name: "Robo", Twitter: "https://x.com/roboPBOC", Image: "/kols/Robo.jpg", Enabled: true},
	{Address: "JDd3hy3gQn2V982mi1zqhNqUw1GfV2UL6g76STojCJPN", Name: "West", Twitter: "https://x.com/ratwizardx", Image: "/kols/West.jpg", Enabled: true},
	{Address: "GJA1HEbxGnqBhBifH9uQauzXSB53to5rhDrzmKxhSU65", Name: "Latuche", Twitter: "https://x.com/Latuche95", Image: "/kols/Latuche.jpg", Enabled: true},
	{Address: "DNfuF1L62WWyW3pNakVkyGGFzVVhj4Yr52jSmdTyeBHm", Name: "Gake", Twitter: "https://x.com/Ga__ke", Image: "/kols/Gake.jpg", Enabled: true},
}

// seedWallets installs the curated registry. Existing rows win so an
// operator can rename or disable a wallet without the seed undoing it.
func (c *DBClient) seedWallets() error {
	seed := make([]KnownWallet, len(defaultKnownWallets))
	copy(seed, defaultKnownWallets)
	return c.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&seed).Error
}

// KnownWallets returns the enabled registry rows in insertion order.
func (c *DBClient) KnownWallets() ([]KnownWallet, error) {
	var wallets []KnownWallet
	err := c.DB.Where("enabled = ?", true).Order("id asc").Find(&wallets).Error
	return wallets, err
}

// UpsertWallet inserts or updates a registry row by address.
func (c *DBClient) UpsertWallet(w *KnownWallet) error {
	return c.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		UpdateAll: true,
	}).Create(w).Error
}
