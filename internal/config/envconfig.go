package config

import (
	"os"
	"strconv"
)

type envConfig struct {
	LogLevel           string
	ServerPort         int
	Version            string
	BambooAPIUser      string
	BambooAPIKey       string `validate:"required"`
	BambooAPIURL       string `validate:"required,url"`
	BambooCompanyURL   string `validate:"required,url"`
	XlsFileLocation    string
	EmailTo            string `validate:"omitempty,email"`
	EmailFrom          string `validate:"omitempty,email"`
	AWSRegion          string `validate:"required"`
	HTTPTimeoutSeconds int    `validate:"gt=0"`
}

func NewEnvironmentConfig() *envConfig {
	return &envConfig{
		LogLevel:           getEnvString("LOG_LEVEL", "INFO"),
		ServerPort:         getEnvInt("SERVER_PORT", 0),
		Version:            getEnvString("VERSION", ""),
		BambooAPIUser:      getEnvString("BAMBOO_API_USER", ""),
		BambooAPIKey:       getEnvString("BAMBOO_API_KEY", ""),
		BambooAPIURL:       getEnvString("BAMBOO_API_URL", ""),
		BambooCompanyURL:   getEnvString("BAMBOO_COMPANY_URL", ""),
		XlsFileLocation:    getEnvString("XLS_FILE_LOCATION", ""),
		EmailTo:            getEnvString("EMAIL_TO", ""),
		EmailFrom:          getEnvString("EMAIL_FROM", ""),
		AWSRegion:          getEnvString("AWS_REGION", "ap-southeast-2"),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
	}
}

// helper function to read an environment or return a default value
func getEnvString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// helper function to read an environment or return a default value
func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnvString(key, strconv.Itoa(defaultVal)))
	if err == nil {
		return val
	}

	return defaultVal
}
