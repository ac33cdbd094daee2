package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
		Timezone string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		ShutdownTimeout           int
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		WriteRequestsPerMinute    int
		WriteBlockTimeInMinute    int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
