package directory

import "StockDash/internal/model"

// curated is the built-in symbol universe covering major sectors and ETFs.
// It seeds the snapshot file on first load. A few symbols appear under more
// than one sector heading; search tolerates the duplicates.
var curated = []model.SymbolRecord{
	// Technology
	{Symbol: "AAPL", Company: "Apple Inc."},
	{Symbol: "GOOGL", Company: "Alphabet Inc. Class A"},
	{Symbol: "GOOG", Company: "Alphabet Inc. Class C"},
	{Symbol: "MSFT", Company: "Microsoft Corporation"},
	{Symbol: "AMZN", Company: "Amazon.com Inc."},
	{Symbol: "TSLA", Company: "Tesla Inc."},
	{Symbol: "META", Company: "Meta Platforms Inc."},
	{Symbol: "NVDA", Company: "NVIDIA Corporation"},
	{Symbol: "NFLX", Company: "Netflix Inc."},
	{Symbol: "ADBE", Company: "Adobe Inc."},
	{Symbol: "CRM", Company: "Salesforce Inc."},
	{Symbol: "ORCL", Company: "Oracle Corporation"},
	{Symbol: "CSCO", Company: "Cisco Systems Inc."},
	{Symbol: "INTC", Company: "Intel Corporation"},
	{Symbol: "AMD", Company: "Advanced Micro Devices Inc."},
	{Symbol: "PYPL", Company: "PayPal Holdings Inc."},
	{Symbol: "UBER", Company: "Uber Technologies Inc."},
	{Symbol: "SNAP", Company: "Snap Inc."},
	{Symbol: "TWTR", Company: "Twitter Inc."},
	{Symbol: "SPOT", Company: "Spotify Technology S.A."},

	// Finance
	{Symbol: "JPM", Company: "JPMorgan Chase & Co."},
	{Symbol: "BAC", Company: "Bank of America Corporation"},
	{Symbol: "WFC", Company: "Wells Fargo & Company"},
	{Symbol: "GS", Company: "The Goldman Sachs Group Inc."},
	{Symbol: "MS", Company: "Morgan Stanley"},
	{Symbol: "C", Company: "Citigroup Inc."},
	{Symbol: "V", Company: "Visa Inc."},
	{Symbol: "MA", Company: "Mastercard Incorporated"},
	{Symbol: "AXP", Company: "American Express Company"},
	{Symbol: "BRK.A", Company: "Berkshire Hathaway Inc. Class A"},
	{Symbol: "BRK.B", Company: "Berkshire Hathaway Inc. Class B"},

	// Healthcare
	{Symbol: "JNJ", Company: "Johnson & Johnson"},
	{Symbol: "PFE", Company: "Pfizer Inc."},
	{Symbol: "UNH", Company: "UnitedHealth Group Incorporated"},
	{Symbol: "ABBV", Company: "AbbVie Inc."},
	{Symbol: "MRK", Company: "Merck & Co. Inc."},
	{Symbol: "BMY", Company: "Bristol Myers Squibb Company"},
	{Symbol: "LLY", Company: "Eli Lilly and Company"},
	{Symbol: "AMGN", Company: "Amgen Inc."},
	{Symbol: "GILD", Company: "Gilead Sciences Inc."},
	{Symbol: "BIIB", Company: "Biogen Inc."},

	// Consumer goods
	{Symbol: "WMT", Company: "Walmart Inc."},
	{Symbol: "HD", Company: "The Home Depot Inc."},
	{Symbol: "MCD", Company: "McDonald's Corporation"},
	{Symbol: "KO", Company: "The Coca-Cola Company"},
	{Symbol: "PEP", Company: "PepsiCo Inc."},
	{Symbol: "NKE", Company: "NIKE Inc."},
	{Symbol: "SBUX", Company: "Starbucks Corporation"},
	{Symbol: "TGT", Company: "Target Corporation"},
	{Symbol: "LOW", Company: "Lowe's Companies Inc."},
	{Symbol: "COST", Company: "Costco Wholesale Corporation"},

	// Energy
	{Symbol: "XOM", Company: "Exxon Mobil Corporation"},
	{Symbol: "CVX", Company: "Chevron Corporation"},
	{Symbol: "COP", Company: "ConocoPhillips"},
	{Symbol: "SLB", Company: "Schlumberger Limited"},
	{Symbol: "EOG", Company: "EOG Resources Inc."},

	// Industrial
	{Symbol: "BA", Company: "The Boeing Company"},
	{Symbol: "CAT", Company: "Caterpillar Inc."},
	{Symbol: "GE", Company: "General Electric Company"},
	{Symbol: "MMM", Company: "3M Company"},
	{Symbol: "UPS", Company: "United Parcel Service Inc."},
	{Symbol: "FDX", Company: "FedEx Corporation"},

	// ETFs
	{Symbol: "SPY", Company: "SPDR S&P 500 ETF Trust"},
	{Symbol: "QQQ", Company: "Invesco QQQ Trust"},
	{Symbol: "VTI", Company: "Vanguard Total Stock Market ETF"},
	{Symbol: "IWM", Company: "iShares Russell 2000 ETF"},
	{Symbol: "EFA", Company: "iShares MSCI EAFE ETF"},
	{Symbol: "GLD", Company: "SPDR Gold Shares"},

	// Additional popular stocks
	{Symbol: "DIS", Company: "The Walt Disney Company"},
	{Symbol: "VZ", Company: "Verizon Communications Inc."},
	{Symbol: "T", Company: "AT&T Inc."},
	{Symbol: "CMCSA", Company: "Comcast Corporation"},
	{Symbol: "IBM", Company: "International Business Machines Corporation"},
	{Symbol: "F", Company: "Ford Motor Company"},
	{Symbol: "GM", Company: "General Motors Company"},
	{Symbol: "DAL", Company: "Delta Air Lines Inc."},
	{Symbol: "AAL", Company: "American Airlines Group Inc."},
	{Symbol: "CCL", Company: "Carnival Corporation & plc"},
	{Symbol: "ROKU", Company: "Roku Inc."},
	{Symbol: "ZM", Company: "Zoom Video Communications Inc."},
	{Symbol: "DOCU", Company: "DocuSign Inc."},
	{Symbol: "SHOP", Company: "Shopify Inc."},
	{Symbol: "SQ", Company: "Block Inc."},
	{Symbol: "COIN", Company: "Coinbase Global Inc."},
	{Symbol: "PLTR", Company: "Palantir Technologies Inc."},
	{Symbol: "RBLX", Company: "Roblox Corporation"},
	{Symbol: "HOOD", Company: "Robinhood Markets Inc."},
	{Symbol: "RIVN", Company: "Rivian Automotive Inc."},
	{Symbol: "LCID", Company: "Lucid Group Inc."},
	{Symbol: "NIO", Company: "NIO Inc."},
	{Symbol: "XPEV", Company: "XPeng Inc."},
	{Symbol: "LI", Company: "Li Auto Inc."},

	// Additional tech
	{Symbol: "SNOW", Company: "Snowflake Inc."},
	{Symbol: "CRWD", Company: "CrowdStrike Holdings Inc."},
	{Symbol: "ZS", Company: "Zscaler Inc."},
	{Symbol: "OKTA", Company: "Okta Inc."},
	{Symbol: "DDOG", Company: "Datadog Inc."},
	{Symbol: "NET", Company: "Cloudflare Inc."},
	{Symbol: "FSLY", Company: "Fastly Inc."},
	{Symbol: "TEAM", Company: "Atlassian Corporation"},
	{Symbol: "WDAY", Company: "Workday Inc."},
	{Symbol: "NOW", Company: "ServiceNow Inc."},
	{Symbol: "SPLK", Company: "Splunk Inc."},
	{Symbol: "PANW", Company: "Palo Alto Networks Inc."},
	{Symbol: "FTNT", Company: "Fortinet Inc."},
	{Symbol: "CYBR", Company: "CyberArk Software Ltd."},

	// Media and telecom
	{Symbol: "TMUS", Company: "T-Mobile US Inc."},
	{Symbol: "CHTR", Company: "Charter Communications Inc."},

	// Real estate
	{Symbol: "AMT", Company: "American Tower Corporation"},
	{Symbol: "PLD", Company: "Prologis Inc."},
	{Symbol: "CCI", Company: "Crown Castle Inc."},
	{Symbol: "EQIX", Company: "Equinix Inc."},
	{Symbol: "PSA", Company: "Public Storage"},

	// Utilities
	{Symbol: "NEE", Company: "NextEra Energy Inc."},
	{Symbol: "SO", Company: "The Southern Company"},
	{Symbol: "DUK", Company: "Duke Energy Corporation"},
	{Symbol: "AEP", Company: "American Electric Power Company Inc."},

	// Materials
	{Symbol: "FCX", Company: "Freeport-McMoRan Inc."},
	{Symbol: "NUE", Company: "Nucor Corporation"},
	{Symbol: "LIN", Company: "Linde plc"},
	{Symbol: "APD", Company: "Air Products and Chemicals Inc."},

	// Semiconductors
	{Symbol: "TSM", Company: "Taiwan Semiconductor Manufacturing Company Limited"},
	{Symbol: "ASML", Company: "ASML Holding N.V."},
	{Symbol: "QCOM", Company: "QUALCOMM Incorporated"},
	{Symbol: "AVGO", Company: "Broadcom Inc."},
	{Symbol: "TXN", Company: "Texas Instruments Incorporated"},
	{Symbol: "MU", Company: "Micron Technology Inc."},
	{Symbol: "LRCX", Company: "Lam Research Corporation"},
	{Symbol: "AMAT", Company: "Applied Materials Inc."},
	{Symbol: "KLAC", Company: "KLA Corporation"},

	// Biotech
	{Symbol: "MRNA", Company: "Moderna Inc."},
	{Symbol: "BNTX", Company: "BioNTech SE"},
	{Symbol: "REGN", Company: "Regeneron Pharmaceuticals Inc."},
	{Symbol: "VRTX", Company: "Vertex Pharmaceuticals Incorporated"},
	{Symbol: "ILMN", Company: "Illumina Inc."},

	// Crypto-adjacent
	{Symbol: "MSTR", Company: "MicroStrategy Incorporated"},
	{Symbol: "RIOT", Company: "Riot Platforms Inc."},
	{Symbol: "MARA", Company: "Marathon Digital Holdings Inc."},

	// Retail
	{Symbol: "ETSY", Company: "Etsy Inc."},
	{Symbol: "EBAY", Company: "eBay Inc."},
	{Symbol: "BABA", Company: "Alibaba Group Holding Limited"},
	{Symbol: "JD", Company: "JD.com Inc."},
	{Symbol: "PDD", Company: "PDD Holdings Inc."},

	// Transportation
	{Symbol: "LYFT", Company: "Lyft Inc."},
	{Symbol: "DASH", Company: "DoorDash Inc."},
	{Symbol: "ABNB", Company: "Airbnb Inc."},

	// Gaming
	{Symbol: "ATVI", Company: "Activision Blizzard Inc."},
	{Symbol: "EA", Company: "Electronic Arts Inc."},
	{Symbol: "TTWO", Company: "Take-Two Interactive Software Inc."},
	{Symbol: "U", Company: "Unity Software Inc."},

	// More ETFs
	{Symbol: "VOO", Company: "Vanguard S&P 500 ETF"},
	{Symbol: "VXUS", Company: "Vanguard Total International Stock ETF"},
	{Symbol: "VEA", Company: "Vanguard FTSE Developed Markets ETF"},
	{Symbol: "VWO", Company: "Vanguard FTSE Emerging Markets ETF"},
	{Symbol: "BND", Company: "Vanguard Total Bond Market ETF"},
	{Symbol: "VNQ", Company: "Vanguard Real Estate ETF"},
}

// fallback is the minimal directory returned when everything else fails.
var fallback = []model.SymbolRecord{
	{Symbol: "AAPL", Company: "Apple Inc."},
	{Symbol: "GOOGL", Company: "Alphabet Inc."},
	{Symbol: "MSFT", Company: "Microsoft Corporation"},
	{Symbol: "AMZN", Company: "Amazon.com Inc."},
	{Symbol: "TSLA", Company: "Tesla Inc."},
}

// Curated returns a copy of the built-in symbol universe.
func Curated() []model.SymbolRecord {
	out := make([]model.SymbolRecord, len(curated))
	copy(out, curated)
	return out
}

// Fallback returns a copy of the minimal 5-entry directory.
func Fallback() []model.SymbolRecord {
	out := make([]model.SymbolRecord, len(fallback))
	copy(out, fallback)
	return out
}
