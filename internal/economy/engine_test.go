package economy

import (
	"errors"
	"testing"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// memoryStore is an in-memory Store and Catalog used by the tests
type memoryStore struct {
	accounts map[string]*models.Account
	items    map[string]*models.ShopItem
	saves    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[string]*models.Account),
		items:    make(map[string]*models.ShopItem),
	}
}

func (m *memoryStore) Account(userID string) (*models.Account, error) {
	account, ok := m.accounts[userID]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (m *memoryStore) SaveAccount(account *models.Account) error {
	copied := *account
	m.accounts[account.UserID] = &copied
	m.saves++
	return nil
}

func (m *memoryStore) Item(name string) (*models.ShopItem, error) {
	item, ok := m.items[name]
	if !ok {
		return nil, nil
	}
	return item, nil
}

// cachingStore hands out the same *models.Account it keeps, the way a
// caching store does, and can be told to fail the next saves.
type cachingStore struct {
	memoryStore
	failSaves int
}

func (c *cachingStore) Account(userID string) (*models.Account, error) {
	account, ok := c.accounts[userID]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (c *cachingStore) SaveAccount(account *models.Account) error {
	if c.failSaves > 0 {
		c.failSaves--
		return errors.New("write timeout")
	}
	return c.memoryStore.SaveAccount(account)
}

func TestGetBalanceCreatesAccountAt100(t *testing.T) {
	store := newMemoryStore()
	engine := New(store, store)

	balance, err := engine.GetBalance("user-1")
	if err != nil {
		t.Fatalf("GetBalance() returned error: %v", err)
	}

	if balance != 100 {
		t.Errorf("GetBalance() = %d, want %d", balance, 100)
	}

	// The account row must be persisted, not only returned
	account := store.accounts["user-1"]
	if account == nil {
		t.Fatal("account was not persisted on first read")
	}
	if account.Balance != 100 {
		t.Errorf("persisted balance = %d, want %d", account.Balance, 100)
	}
}

func TestGetBalanceReturnsStoredValue(t *testing.T) {
	store := newMemoryStore()
	store.accounts["user-1"] = &models.Account{UserID: "user-1", Balance: 250}
	engine := New(store, store)

	balance, err := engine.GetBalance("user-1")
	if err != nil {
		t.Fatalf("GetBalance() returned error: %v", err)
	}
	if balance != 250 {
		t.Errorf("GetBalance() = %d, want %d", balance, 250)
	}
}

func TestChangeBalanceDoesNotClamp(t *testing.T) {
	store := newMemoryStore()
	store.accounts["user-1"] = &models.Account{UserID: "user-1", Balance: 50}
	engine := New(store, store)

	// Deduct more than the balance: the primitive must apply it anyway,
	// sufficiency checks belong to the caller.
	if err := engine.ChangeBalance("user-1", -80); err != nil {
		t.Fatalf("ChangeBalance() returned error: %v", err)
	}

	if got := store.accounts["user-1"].Balance; got != -30 {
		t.Errorf("balance after overdraft = %d, want %d", got, -30)
	}
}

func TestChangeBalanceCreatesAtZero(t *testing.T) {
	store := newMemoryStore()
	engine := New(store, store)

	if err := engine.ChangeBalance("new-user", 40); err != nil {
		t.Fatalf("ChangeBalance() returned error: %v", err)
	}

	if got := store.accounts["new-user"].Balance; got != 40 {
		t.Errorf("balance = %d, want %d (created at 0, not at 100)", got, 40)
	}
}

func TestDailyClaim(t *testing.T) {
	store := newMemoryStore()
	engine := New(store, store)
	now := time.Unix(1_700_000_000, 0)

	result, err := engine.DailyClaim("user-1", now)
	if err != nil {
		t.Fatalf("DailyClaim() returned error: %v", err)
	}
	if !result.Granted {
		t.Fatal("first DailyClaim() was not granted")
	}
	if result.Amount < DailyMin || result.Amount > DailyMax {
		t.Errorf("daily amount = %d, want within [%d, %d]", result.Amount, DailyMin, DailyMax)
	}

	// Second claim inside the 24h window must be refused with a positive wait
	result, err = engine.DailyClaim("user-1", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("DailyClaim() returned error: %v", err)
	}
	if result.Granted {
		t.Error("second DailyClaim() inside 24h was granted")
	}
	if result.Wait <= 0 {
		t.Errorf("Wait = %v, want a positive remaining duration", result.Wait)
	}

	// After the window elapses the claim must succeed again
	result, err = engine.DailyClaim("user-1", now.Add(25*time.Hour))
	if err != nil {
		t.Fatalf("DailyClaim() returned error: %v", err)
	}
	if !result.Granted {
		t.Error("DailyClaim() after 24h was refused")
	}
}

func TestDailyClaimSurvivesRestart(t *testing.T) {
	store := newMemoryStore()
	now := time.Unix(1_700_000_000, 0)

	engine := New(store, store)
	if result, _ := engine.DailyClaim("user-1", now); !result.Granted {
		t.Fatal("first DailyClaim() was not granted")
	}

	// A fresh engine over the same store simulates a process restart:
	// the cooldown lives in the account row, not in memory.
	restarted := New(store, store)
	result, err := restarted.DailyClaim("user-1", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("DailyClaim() returned error: %v", err)
	}
	if result.Granted {
		t.Error("DailyClaim() after restart ignored the persisted cooldown")
	}
}

func TestWorkRange(t *testing.T) {
	store := newMemoryStore()
	engine := New(store, store)

	amount, err := engine.Work("user-1")
	if err != nil {
		t.Fatalf("Work() returned error: %v", err)
	}
	if amount < WorkMin || amount > WorkMax {
		t.Errorf("work amount = %d, want within [%d, %d]", amount, WorkMin, WorkMax)
	}

	if got := store.accounts["user-1"].Balance; got != 100+amount {
		t.Errorf("balance = %d, want %d", got, 100+amount)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	store := newMemoryStore()
	engine := New(store, store)

	_, err := engine.Purchase("user-1", "Nonexistent")
	if !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("Purchase() error = %v, want %v", err, ErrNoSuchItem)
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	store := newMemoryStore()
	store.items["VIP"] = &models.ShopItem{Item: "VIP", Price: 500, Description: "Special VIP Role"}
	engine := New(store, store)

	_, err := engine.Purchase("user-1", "VIP")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Purchase() error = %v, want %v", err, ErrInsufficientFunds)
	}

	// A rejected purchase must leave the balance unchanged
	if got := store.accounts["user-1"].Balance; got != 100 {
		t.Errorf("balance after rejected purchase = %d, want %d", got, 100)
	}
}

func TestPurchaseDeductsPrice(t *testing.T) {
	store := newMemoryStore()
	store.items["VIP"] = &models.ShopItem{Item: "VIP", Price: 500, Description: "Special VIP Role"}
	store.accounts["user-1"] = &models.Account{UserID: "user-1", Balance: 620}
	engine := New(store, store)

	result, err := engine.Purchase("user-1", "VIP")
	if err != nil {
		t.Fatalf("Purchase() returned error: %v", err)
	}

	if result.RoleName != "VIP" {
		t.Errorf("RoleName = %q, want %q", result.RoleName, "VIP")
	}

	if got := store.accounts["user-1"].Balance; got != 120 {
		t.Errorf("balance = %d, want %d", got, 120)
	}
}

// TestFailedPurchaseLeavesSharedAccountUntouched drives the engine over
// a store that shares its account pointers: a save that fails must not
// leave the deduction visible to the next read, and the retry must
// charge exactly once.
func TestFailedPurchaseLeavesSharedAccountUntouched(t *testing.T) {
	store := &cachingStore{memoryStore: *newMemoryStore(), failSaves: 1}
	store.items["VIP"] = &models.ShopItem{Item: "VIP", Price: 500, Description: "Special VIP Role"}
	store.accounts["user-1"] = &models.Account{UserID: "user-1", Balance: 600}
	engine := New(store, store)

	if _, err := engine.Purchase("user-1", "VIP"); err == nil {
		t.Fatal("Purchase() with a failing save returned no error")
	}

	if got := store.accounts["user-1"].Balance; got != 600 {
		t.Fatalf("balance after failed purchase = %d, want %d", got, 600)
	}

	result, err := engine.Purchase("user-1", "VIP")
	if err != nil {
		t.Fatalf("retried Purchase() returned error: %v", err)
	}
	if result.RoleName != "VIP" {
		t.Errorf("RoleName = %q, want %q", result.RoleName, "VIP")
	}
	if got := store.accounts["user-1"].Balance; got != 100 {
		t.Errorf("balance after retried purchase = %d, want %d", got, 100)
	}
}

// TestFailedDailyClaimLeavesNoCooldown checks that a failed save does
// not record the claim timestamp: the user must be able to retry at
// once instead of waiting out a cooldown for a payout never granted.
func TestFailedDailyClaimLeavesNoCooldown(t *testing.T) {
	store := &cachingStore{memoryStore: *newMemoryStore(), failSaves: 1}
	store.accounts["user-1"] = &models.Account{UserID: "user-1", Balance: 100}
	engine := New(store, store)
	now := time.Unix(1_700_000_000, 0)

	if _, err := engine.DailyClaim("user-1", now); err == nil {
		t.Fatal("DailyClaim() with a failing save returned no error")
	}
	if got := store.accounts["user-1"].LastDaily; got != 0 {
		t.Fatalf("LastDaily after failed claim = %d, want 0", got)
	}
	if got := store.accounts["user-1"].Balance; got != 100 {
		t.Fatalf("balance after failed claim = %d, want %d", got, 100)
	}

	result, err := engine.DailyClaim("user-1", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("retried DailyClaim() returned error: %v", err)
	}
	if !result.Granted {
		t.Error("retried DailyClaim() was refused after a failed save")
	}
}

// TestNewUserBuysVIP follows a fresh user from first command to a
// successful purchase: work, a failed buy, grinding, then the buy.
func TestNewUserBuysVIP(t *testing.T) {
	store := newMemoryStore()
	store.items["VIP"] = &models.ShopItem{Item: "VIP", Price: 500, Description: "Special VIP Role"}
	engine := New(store, store)

	amount, err := engine.Work("fresh")
	if err != nil {
		t.Fatalf("Work() returned error: %v", err)
	}
	balance, _ := engine.GetBalance("fresh")
	if balance != 100+amount {
		t.Fatalf("balance after first work = %d, want %d", balance, 100+amount)
	}

	// 100 + [20,150] can never reach 500
	if _, err := engine.Purchase("fresh", "VIP"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Purchase() error = %v, want %v", err, ErrInsufficientFunds)
	}

	// Grind work and daily until the price is covered
	now := time.Unix(1_700_000_000, 0)
	for i := 0; i < 40; i++ {
		balance, _ = engine.GetBalance("fresh")
		if balance >= 500 {
			break
		}
		if _, err := engine.Work("fresh"); err != nil {
			t.Fatalf("Work() returned error: %v", err)
		}
		now = now.Add(25 * time.Hour)
		if _, err := engine.DailyClaim("fresh", now); err != nil {
			t.Fatalf("DailyClaim() returned error: %v", err)
		}
	}

	balance, _ = engine.GetBalance("fresh")
	if balance < 500 {
		t.Fatalf("could not accumulate 500 coins, balance = %d", balance)
	}

	result, err := engine.Purchase("fresh", "VIP")
	if err != nil {
		t.Fatalf("Purchase() returned error: %v", err)
	}
	if result.RoleName != "VIP" {
		t.Errorf("RoleName = %q, want %q", result.RoleName, "VIP")
	}

	after, _ := engine.GetBalance("fresh")
	if after != balance-500 {
		t.Errorf("balance after purchase = %d, want %d", after, balance-500)
	}
}
