package constants

// NATS Subjects
const (
	// Billing Service
	SubjectSubscriptionUpdated = "billing.subscription.updated"
)

// NATS queue groups
const (
	QueueGroupAPI = "contaflux-api"
)
