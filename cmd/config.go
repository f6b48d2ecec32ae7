package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MongoURI      string
	MongoDatabase string

	SyncSchedule         string
	CompanyStatsSchedule string
	DealerRoutesSchedule string
}
