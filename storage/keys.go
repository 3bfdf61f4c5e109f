package storage

// Every stored collection lives under the fixed application prefix.
// Per-account collections append the account id so that switching the
// active account switches every store's visible data independently.
const Prefix = "campus_eats_"

func AccountsKey() string { return Prefix + "users" }
func SessionKey() string  { return Prefix + "current_user" }
func DarkModeKey() string { return Prefix + "dark_mode" }

func OrdersKey(accountID string) string     { return Prefix + "orders_" + accountID }
func CartKey(accountID string) string       { return Prefix + "cart_" + accountID }
func FavoritesKey(accountID string) string  { return Prefix + "favorites_" + accountID }
func InboxKey(accountID string) string      { return Prefix + "notifications_" + accountID }
func OnboardingKey(accountID string) string { return Prefix + "onboarding_completed_" + accountID }
func FirstLoginKey(accountID string) string { return Prefix + "first_login_" + accountID }
