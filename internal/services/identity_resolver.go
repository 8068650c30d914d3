package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"time"

	"portalchat/internal/models"
	"portalchat/internal/repositories"
)

// storageKeyPattern matches the original fixed-length hex record keys.
var storageKeyPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

func IsStorageKey(candidate string) bool {
	return storageKeyPattern.MatchString(candidate)
}

// IdentityCache is the optional read-through cache in front of the
// employee directory. A nil cache is valid and simply disables it.
type IdentityCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type resolverStep struct {
	name    string
	applies func(candidate string) bool
	lookup  func(candidate string) (*models.Employee, error)
}

// IdentityResolver maps a loosely-typed participant identifier to an
// employee record. The same employee is addressable by the business
// code, the legacy 24-hex storage key, and, for records created
// before the code existed, the phone number or primary address. The
// chain order is a contract: business code wins over storage key,
// both win over the legacy fallbacks.
//
// Resolution performs no writes and a miss is a value, not an error;
// callers fall back to stored snapshots or a placeholder display.
type IdentityResolver struct {
	employeeRepo *repositories.EmployeeRepository
	cache        IdentityCache
	cacheTTL     time.Duration
	steps        []resolverStep
}

func NewIdentityResolver(employeeRepo *repositories.EmployeeRepository, cache IdentityCache, cacheTTL time.Duration) *IdentityResolver {
	resolver := &IdentityResolver{
		employeeRepo: employeeRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
	resolver.steps = []resolverStep{
		{name: "employee_code", lookup: employeeRepo.FindByEmployeeCode},
		{name: "storage_key", applies: IsStorageKey, lookup: employeeRepo.FindByStorageKey},
		{name: "phone", lookup: employeeRepo.FindByPhone},
		{name: "address", lookup: employeeRepo.FindByAddress},
	}
	return resolver
}

// Resolve tries each identifier scheme in priority order and returns
// the first employee that matches. The second return is false when no
// scheme matched or the directory was unreachable; either way the
// caller handles it the same, so directory errors are only logged.
func (ir *IdentityResolver) Resolve(ctx context.Context, candidate string) (*models.Employee, bool) {
	if candidate == "" {
		return nil, false
	}

	if employee := ir.fromCache(ctx, candidate); employee != nil {
		return employee, true
	}

	for _, step := range ir.steps {
		if step.applies != nil && !step.applies(candidate) {
			continue
		}
		employee, err := step.lookup(candidate)
		if err != nil {
			log.Printf("Identity lookup by %s failed for %q: %v", step.name, candidate, err)
			continue
		}
		if employee != nil {
			ir.store(ctx, candidate, employee)
			return employee, true
		}
	}

	return nil, false
}

// CanonicalID returns the business employee code when the candidate
// resolves, otherwise the candidate unchanged. The reconciler uses it
// to rewrite legacy participant identifiers.
func (ir *IdentityResolver) CanonicalID(ctx context.Context, candidate string) string {
	if employee, ok := ir.Resolve(ctx, candidate); ok {
		return employee.EmployeeCode
	}
	return candidate
}

func (ir *IdentityResolver) fromCache(ctx context.Context, candidate string) *models.Employee {
	if ir.cache == nil {
		return nil
	}
	cached, err := ir.cache.Get(ctx, cacheKey(candidate))
	if err != nil {
		return nil
	}
	var employee models.Employee
	if err := json.Unmarshal([]byte(cached), &employee); err != nil {
		log.Printf("Corrupt identity cache entry for %q: %v", candidate, err)
		return nil
	}
	return &employee
}

func (ir *IdentityResolver) store(ctx context.Context, candidate string, employee *models.Employee) {
	if ir.cache == nil {
		return
	}
	encoded, err := json.Marshal(employee)
	if err != nil {
		return
	}
	if err := ir.cache.Set(ctx, cacheKey(candidate), string(encoded), ir.cacheTTL); err != nil {
		log.Printf("Identity cache write failed for %q: %v", candidate, err)
	}
}

func cacheKey(candidate string) string {
	return "identity:" + candidate
}
