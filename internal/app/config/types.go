package config

type (
	InternalConfig struct {
		App       App
		Directory Directory
		AuthAPI   AuthAPI
		JWT       JWT
		Reports   Reports
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		ShutdownTimeout           int
		AdminAPIKeyHash           string
	}

	// Directory configures the external doctor-directory collaborator.
	Directory struct {
		BaseURL                string
		TimeoutSeconds         int
		RefreshIntervalSeconds int
		RefreshBurst           int
	}

	// AuthAPI configures the external auth/profile REST collaborator.
	AuthAPI struct {
		BaseURL        string
		TimeoutSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Reports struct {
		BucketName           string
		PresignExpiryMinutes int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
