package config

// Default service endpoints.
const (
	DefaultVPCEndpoint = "https://vpc.aliyuncs.com"
	DefaultECSEndpoint = "https://ecs.aliyuncs.com"
	DefaultNASEndpoint = "http://nas.{region}.aliyuncs.com"
	DefaultFCEndpoint  = "https://{accountId}.{region}.fc.aliyuncs.com/2016-08-15/account-settings"
	DefaultSTSEndpoint = "https://sts.cn-hangzhou.aliyuncs.com"
)

// API versions sent with every request of a service.
const (
	VPCAPIVersion = "2016-04-28"
	ECSAPIVersion = "2014-05-26"
	NASAPIVersion = "2017-06-26"
	FCAPIVersion  = "2016-08-15"
	STSAPIVersion = "2015-04-01"
)

// Default client-side rate limit.
const (
	DefaultRequestsPerSecond = 10.0
	DefaultBurst             = 5
)

// Environment variables holding credentials.
const (
	EnvAccessKeyID     = "SRMKIT_ACCESS_KEY_ID"
	EnvAccessKeySecret = "SRMKIT_ACCESS_KEY_SECRET"
	EnvSecurityToken   = "SRMKIT_SECURITY_TOKEN"
)
