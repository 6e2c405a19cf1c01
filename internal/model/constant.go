package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// TimestampLayout is the createdAt format, millisecond ISO-8601 in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
