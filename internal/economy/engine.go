// Package economy implements the coin economy of the bot: balances,
// the daily claim cooldown, work rewards and shop purchases.
package economy

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// Economy tuning values, matching the original DarkMC deployment
const (
	StartingBalance = 100
	DailyCooldown   = 24 * time.Hour
	DailyMin        = 100
	DailyMax        = 300
	WorkMin         = 20
	WorkMax         = 150
)

var (
	// ErrNoSuchItem indicates the requested shop item does not exist
	ErrNoSuchItem = errors.New("el artículo no existe en la tienda")
	// ErrInsufficientFunds indicates the balance does not cover the price
	ErrInsufficientFunds = errors.New("no tienes suficientes monedas")
)

// Store is the account persistence the engine needs
type Store interface {
	Account(userID string) (*models.Account, error)
	SaveAccount(account *models.Account) error
}

// Catalog is the shop catalog lookup the engine needs
type Catalog interface {
	Item(name string) (*models.ShopItem, error)
}

// DailyResult is the outcome of a daily claim attempt
type DailyResult struct {
	Granted bool
	Amount  int64
	Wait    time.Duration // remaining cooldown when not granted
}

// PurchaseResult describes a completed purchase. RoleName is the role the
// caller should grant as a side effect, when a guild role by that name exists.
type PurchaseResult struct {
	Item     *models.ShopItem
	RoleName string
}

// Engine performs all balance mutations. The mutex makes every
// read-check-mutate sequence atomic with respect to a single user;
// cross-user atomicity is not needed for a guild-sized deployment.
// Mutations are computed on a copy of the loaded account and only the
// copy is saved: the store may hand out cached documents, and a failed
// write must not leave a half-applied balance behind.
type Engine struct {
	store   Store
	catalog Catalog
	mu      sync.Mutex
}

// New creates an economy engine over the given store and catalog
func New(store Store, catalog Catalog) *Engine {
	return &Engine{store: store, catalog: catalog}
}

// GetBalance returns the user's balance, creating the account with the
// starting balance on first access.
func (e *Engine) GetBalance(userID string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.loadOrCreate(userID, StartingBalance)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// ChangeBalance adds delta (possibly negative) to the user's balance,
// creating the account at 0 first if absent. It does not clamp at zero:
// sufficiency checks are the caller's responsibility.
func (e *Engine) ChangeBalance(userID string, delta int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.changeBalanceLocked(userID, delta)
}

// DailyClaim grants a random daily reward at most once per rolling 24h
// window. The last claim timestamp lives in the account row, so the
// cooldown survives restarts.
func (e *Engine) DailyClaim(userID string, now time.Time) (*DailyResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.loadOrCreate(userID, StartingBalance)
	if err != nil {
		return nil, err
	}

	if account.LastDaily > 0 {
		elapsed := now.Unix() - account.LastDaily
		if elapsed < int64(DailyCooldown.Seconds()) {
			wait := DailyCooldown - time.Duration(elapsed)*time.Second
			return &DailyResult{Granted: false, Wait: wait}, nil
		}
	}

	amount := rollBetween(DailyMin, DailyMax)
	updated := *account
	updated.Balance += amount
	updated.LastDaily = now.Unix()

	if err := e.store.SaveAccount(&updated); err != nil {
		return nil, err
	}

	return &DailyResult{Granted: true, Amount: amount}, nil
}

// Work grants a random work reward with no cooldown
func (e *Engine) Work(userID string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.loadOrCreate(userID, StartingBalance)
	if err != nil {
		return 0, err
	}

	amount := rollBetween(WorkMin, WorkMax)
	updated := *account
	updated.Balance += amount
	if err := e.store.SaveAccount(&updated); err != nil {
		return 0, err
	}
	return amount, nil
}

// Purchase looks up the item, checks the balance covers the price and
// deducts it. On any error, including a failed save, the balance is
// left untouched.
func (e *Engine) Purchase(userID, itemName string) (*PurchaseResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.catalog.Item(itemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNoSuchItem
	}

	account, err := e.loadOrCreate(userID, StartingBalance)
	if err != nil {
		return nil, err
	}

	if account.Balance < item.Price {
		return nil, ErrInsufficientFunds
	}

	updated := *account
	updated.Balance -= item.Price
	if err := e.store.SaveAccount(&updated); err != nil {
		return nil, err
	}

	return &PurchaseResult{Item: item, RoleName: item.Item}, nil
}

// loadOrCreate returns the account, creating and persisting it with the
// given initial balance when it does not exist yet. Callers hold the mutex.
func (e *Engine) loadOrCreate(userID string, initial int64) (*models.Account, error) {
	account, err := e.store.Account(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		account = &models.Account{UserID: userID, Balance: initial}
		if err := e.store.SaveAccount(account); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// changeBalanceLocked applies a delta with the mutex already held
func (e *Engine) changeBalanceLocked(userID string, delta int64) error {
	account, err := e.loadOrCreate(userID, 0)
	if err != nil {
		return err
	}
	updated := *account
	updated.Balance += delta
	return e.store.SaveAccount(&updated)
}

// rollBetween returns a uniformly random value in [min, max]
func rollBetween(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}
