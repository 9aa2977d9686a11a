package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	JWTSecret              string
	JWTAccessTTL           string
	JWTRefreshTTL          string
	StaleSweepSchedule     string
	StaleItemAge           string
}
