package constants

// Redis key formats
const (
	// Billing Service
	KeyBillingStatus = "billing:status:%s" // Format: billing:status:{user_id}

	// Assistant Service
	KeyAssistantChatQuota = "assistant:chat:%s:%s" // Format: assistant:chat:{user_id}:{yyyy-mm-dd}

	// Rate Limiting. The middleware appends :{path}:{identifier}
	KeyRateLimit = "rate:limit"
)
