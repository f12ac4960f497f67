package configs

// Admin holds credentials for the back-office endpoints. The Token is a
// static bearer token compared against each admin request. Leaving it empty
// disables the check and should only be done in local development.
type Admin struct {
	Token string `env:"TOKEN" envDefault:""`
}
