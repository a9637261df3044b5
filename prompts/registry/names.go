package registry

// Prompt names with embedded defaults. Use these with Registry.Lookup and
// Resolver.Resolve; they match the names in the remote prompt store.
const (
	AswathDamodaran      = "hedge-fund/aswath_damodaran"
	BenGraham            = "hedge-fund/ben_graham"
	BillAckman           = "hedge-fund/bill_ackman"
	CathieWood           = "hedge-fund/cathie_wood"
	CharlieMunger        = "hedge-fund/charlie_munger"
	FinalReport          = "hedge-fund/final_report"
	MichaelBurry         = "hedge-fund/michael_burry"
	MohnishPabrai        = "hedge-fund/mohnish_pabrai"
	PeterLynch           = "hedge-fund/peter_lynch"
	PhilFisher           = "hedge-fund/phil_fisher"
	PortfolioManager     = "hedge-fund/portfolio_manager"
	RakeshJhunjhunwala   = "hedge-fund/rakesh_jhunjhunwala"
	StanleyDruckenmiller = "hedge-fund/stanley_druckenmiller"
	WarrenBuffett        = "hedge-fund/warren_buffett"
)
