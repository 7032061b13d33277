package llmprovider

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"
	ProviderQwen      = "qwen"
	ProviderAnthropic = "anthropic"

	// Base URLs for OpenAI-compatible vendors.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	defaultAnthropicMaxTokens = 1024
)
