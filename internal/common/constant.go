package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultFraudThreshold is the default verified-amount threshold above which
// a claim is counted as a potential fraud. A placeholder heuristic; deployments
// override it via configuration.
const DefaultFraudThreshold uint64 = 10000
