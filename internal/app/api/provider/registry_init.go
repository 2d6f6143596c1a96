package provider

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Settings carries the values a provider creator needs. Credentials are passed
// in explicitly and never read from the environment by providers.
type Settings struct {
	APIKey         string
	BaseURL        string
	Model          string
	SmartFormat    bool
	Timeout        time.Duration
	SimulatedDelay time.Duration

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// ProviderCreator builds a provider from settings
type ProviderCreator func(settings Settings) (TranscriptionProvider, error)

var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator; providers call it from init().
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// AvailableProviders returns all registered provider types, sorted
func AvailableProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// NewProvider creates and validates a provider of the given type
func NewProvider(providerType string, settings Settings) (TranscriptionProvider, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}

	p, err := creator(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", providerType, err)
	}
	if err := p.ValidateConfiguration(); err != nil {
		return nil, fmt.Errorf("provider validation failed: %w", err)
	}
	return p, nil
}
