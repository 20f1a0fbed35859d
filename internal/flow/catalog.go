package flow

// Node icons. Wide glyphs only; variation-selector emoji render inconsistently across terminals.
const (
	IconUser      = "👤"
	IconVerify    = "🪪"
	IconMonitor   = "💻"
	IconHome      = "🏠"
	IconCart      = "🛒"
	IconUpload    = "📤"
	IconSearch    = "🔍"
	IconCalendar  = "📅"
	IconAlert     = "🚨"
	IconHandshake = "🤝"
	IconTruck     = "🚚"
	IconMoney     = "💵"
	IconPhone     = "📞"
	IconChat      = "💬"
	IconSettings  = "🔧"
	IconClock     = "🕒"
	IconStar      = "🌟"
	IconBook      = "📖"
	IconDocument  = "📄"
	IconUsers     = "👥"
	IconCheck     = "✅"
	IconBuilding  = "🏢"
	IconPackage   = "📦"
	IconStock     = "🏬"
	IconEye       = "👀"
	IconFilter    = "🧮"
	IconWheat     = "🌾"
)

const (
	farmerDone  = "Farmer can return to dashboard for further tasks"
	buyerDone   = "Buyer can return to dashboard for new transactions"
	companyDone = "Company can continue managing listings and orders"
)

func process(icon, title, description string) Node {
	return Node{Icon: icon, Title: title, Description: description, Kind: KindProcess}
}

func end(icon, title, description string) Node {
	return Node{Icon: icon, Title: title, Description: description, Kind: KindEnd}
}

func action(icon, title, description string, opens SubFlow) Node {
	return Node{Icon: icon, Title: title, Description: description, Kind: KindAction, Opens: opens}
}

func single(node Node) Stage {
	return Stage{Node: node}
}

// tradeAgreement is the shared hand-off every trade ends with, differing only in who returns
// to their dashboard at the end.
func tradeAgreement(completion string) *Section {
	return &Section{
		Title: "Trade Agreement Process",
		Steps: []Node{
			process(IconHandshake, "Agree to Trade", "Either party confirms trade terms"),
			process(IconUsers, "Agent Assignment", "Field agent assigned for supervision"),
			process(IconTruck, "Quality & Logistics", "Agent supervises quality, loading & dispatch"),
			process(IconMoney, "Payment", "On-site payment or bank transfer"),
			end(IconCheck, "Completion", completion),
		},
	}
}

var charts = map[Role]Chart{
	Farmer: {
		Role:     Farmer,
		Title:    "Farmer Flow",
		Subtitle: "Complete Farmer Journey - From Registration to Trade Completion",
		Stages: []Stage{
			single(Node{
				Icon: IconUser, Title: "Farmer Registration", Kind: KindStart,
				Description: "Farmer registers on AgriConnect platform with basic details",
			}),
			single(process(IconVerify, "Identity Verification", "On-site verification visit and document validation")),
			single(Node{
				Icon: IconMonitor, Title: "Digital Literacy Check", Kind: KindDecision,
				Description: "Assessment of farmer's digital capabilities",
			}),
			{Branches: []Branch{
				{
					Label: "No Digital Literacy",
					Node: Node{
						Icon: IconSettings, Title: "Agent Assignment", Kind: KindAction,
						Description: "Dedicated agent provides training and ongoing support",
					},
				},
				{
					Label: "Digitally Literate",
					Node:  process(IconCheck, "Direct Portal Access", "Farmer gets immediate access to all platform features"),
				},
			}},
			single(process(IconHome, "Farmer Dashboard", "Central hub with access to all AgriConnect services and features")),
		},
		Actions: []Node{
			action(IconCart, "Order Agri-Inputs", "Purchase certified seeds, fertilizers, pesticides", FarmerInputs),
			action(IconUpload, "Post Crop for Sale", "List crop with details and expected pricing", FarmerPostCrop),
			action(IconSearch, "Search for Buyers", "Browse buyer requirements and connect", FarmerSearchBuyers),
			action(IconCalendar, "Crop Health Visit", "Schedule field visit for disease diagnosis", FarmerHealthVisit),
			action(IconAlert, "Issue Reporting", "24/7 support system for dispute resolution", FarmerIssueReporting),
		},
		Hint: "Select any of the 5 main options above to see further steps",
	},
	Buyer: {
		Role:     Buyer,
		Title:    "Crop Buyer Flow",
		Subtitle: "Complete Buyer Journey - From Registration to Trade Completion",
		Stages: []Stage{
			single(Node{
				Icon: IconUser, Title: "Buyer Registration", Kind: KindStart,
				Description: "Buyer registers on AgriConnect platform",
			}),
			single(process(IconVerify, "Identity Verification", "On-site verification visit and document validation")),
			single(process(IconCheck, "Access Granted", "Approval granted after verification")),
			single(process(IconHome, "Buyer Dashboard", "Central hub with access to all buyer services and features")),
		},
		Actions: []Node{
			action(IconEye, "Browse Crop Listings", "View crops posted by farmers with filters", BuyerBrowseCrops),
			action(IconDocument, "Post Crop Requirement", "Submit crop requirements for farmers to see", BuyerPostRequirement),
			action(IconAlert, "Dispute Reporting", "24/7 support system for issue resolution", BuyerDisputeReporting),
		},
		Hint: "Select any of the 3 main options above to see further steps",
	},
	Company: {
		Role:     Company,
		Title:    "Agricultural Company Flow",
		Subtitle: "Complete Company Journey - From Registration to Order Management",
		Stages: []Stage{
			single(Node{
				Icon: IconBuilding, Title: "Company Registration", Kind: KindStart,
				Description: "Company registers on AgriConnect platform",
			}),
			single(process(IconDocument, "Identity Verification", "Submit verification documents")),
			single(process(IconPhone, "Verification Call", "Company schedules verification call")),
			single(process(IconVerify, "Field Visit", "Physical verification visit conducted")),
			single(process(IconCheck, "Access Granted", "Post-approval dashboard access granted")),
			single(process(IconHome, "Company Dashboard", "Central hub for managing products, orders, and logistics")),
		},
		Actions: []Node{
			action(IconPackage, "List Certified Agri-Inputs", "Add and manage product listings", CompanyListInputs),
			action(IconCart, "Orders Managed by Platform", "AgriConnect handles order processing and fulfillment", CompanyManageOrders),
			action(IconStock, "Inventory & Logistics by Platform", "AgriConnect manages stock tracking and logistics", CompanyManageInventory),
			action(IconAlert, "Dispute Reporting", "Handle product complaints and issues", CompanyDisputeHandling),
		},
		Hint: "Select any of the 4 options above to see detailed process steps",
		Note: "Order management and inventory logistics are handled by AgriConnect platform",
	},
}

var panels = map[panelKey]Panel{
	{Farmer, FarmerInputs.ID()}: {
		Flow:  FarmerInputs,
		Title: "Order Agri-Inputs Process",
		Tone:  ToneGreen,
		Steps: []Node{
			process(IconCart, "Browse & Order", "Select certified products and place order"),
			process(IconClock, "Agent Delivery", "Agent delivers within 30-60 minutes"),
			process(IconStar, "Review & Training", "Take review and explain usage to farmer"),
			end(IconCheck, "Completion", farmerDone),
		},
	},
	{Farmer, FarmerPostCrop.ID()}: {
		Flow:  FarmerPostCrop,
		Title: "Post Crop for Sale Process",
		Tone:  TonePurple,
		Steps: []Node{
			process(IconDocument, "List Crop Details", "Enter crop info & expected pricing"),
			process(IconUpload, "Submit Listing", "Crop posted for buyers to view"),
		},
		Followup: tradeAgreement(farmerDone),
	},
	{Farmer, FarmerSearchBuyers.ID()}: {
		Flow:  FarmerSearchBuyers,
		Title: "Search for Buyers Process",
		Tone:  ToneBlue,
		Steps: []Node{
			process(IconSearch, "Browse Requirements", "View buyer requirements and criteria"),
			process(IconUsers, "Connect for Negotiation", "Initiate contact with potential buyers"),
			process(IconChat, "Chat/Call/Voice", "Negotiate terms via communication"),
		},
		Followup: tradeAgreement(farmerDone),
	},
	{Farmer, FarmerHealthVisit.ID()}: {
		Flow:  FarmerHealthVisit,
		Title: "Crop Health Visit Process",
		Tone:  ToneOrange,
		Steps: []Node{
			process(IconCalendar, "Schedule Visit", "Book field visit appointment"),
			process(IconSearch, "Field Diagnosis", "Agent diagnoses disease/pest issues"),
			process(IconBook, "Treatment Plan", "Recommend and arrange treatment"),
			end(IconCheck, "Completion", farmerDone),
		},
	},
	{Farmer, FarmerIssueReporting.ID()}: {
		Flow:  FarmerIssueReporting,
		Title: "Issue Reporting Process",
		Tone:  ToneRed,
		Steps: []Node{
			process(IconAlert, "Report Issue", "Submit dispute or problem report"),
			process(IconUsers, "Team Investigation", "Support team + agent investigate"),
			process(IconClock, "Resolution", "Issue resolved within 72 hours"),
			end(IconCheck, "Resume Use", farmerDone),
		},
	},
	{Buyer, BuyerBrowseCrops.ID()}: {
		Flow:  BuyerBrowseCrops,
		Title: "Browse Crop Listings Process",
		Tone:  ToneBlue,
		Steps: []Node{
			process(IconEye, "View Crop Listings", "Browse crops posted by farmers"),
			process(IconFilter, "Apply Filters", "Filter by type, location, quantity, price"),
			process(IconChat, "Connect & Discuss", "Chat/call with farmer to discuss terms"),
		},
		Followup: tradeAgreement(buyerDone),
	},
	{Buyer, BuyerPostRequirement.ID()}: {
		Flow:  BuyerPostRequirement,
		Title: "Post Crop Requirement Process",
		Tone:  TonePurple,
		Steps: []Node{
			process(IconDocument, "Fill Requirements", "Enter crop type, quantity, price, timeline"),
			process(IconSearch, "Submit Listing", "Requirement posted for farmers to see"),
			process(IconUsers, "Review Proposals", "Farmers contact, buyer reviews profiles"),
			process(IconChat, "Engage Discussion", "Chat/call to negotiate terms"),
		},
		Followup: tradeAgreement(buyerDone),
	},
	{Buyer, BuyerDisputeReporting.ID()}: {
		Flow:  BuyerDisputeReporting,
		Title: "Dispute Reporting Process",
		Tone:  ToneRed,
		Steps: []Node{
			process(IconAlert, "Report Dispute", "Submit issue or dispute report"),
			process(IconUsers, "Team Investigation", "Support team + agent investigate"),
			process(IconClock, "Resolution", "Issue resolved within 72 hours"),
			end(IconCheck, "Resume Access", buyerDone),
		},
	},
	{Company, CompanyListInputs.ID()}: {
		Flow:  CompanyListInputs,
		Title: "List Certified Agri-Inputs Process",
		Tone:  ToneGreen,
		Steps: []Node{
			process(IconPackage, "Add Products", "Add seeds, fertilizers, pesticides"),
			process(IconUpload, "Upload Certifications", "Upload certificates and descriptions"),
			process(IconSettings, "Set Pricing", "Set pricing and availability"),
			process(IconDocument, "Submit for Review", "Platform approves and products go live"),
			end(IconCheck, "Completion", companyDone),
		},
	},
	{Company, CompanyManageOrders.ID()}: {
		Flow:  CompanyManageOrders,
		Title: "Order Management by AgriConnect Platform",
		Tone:  ToneBlue,
		Steps: []Node{
			process(IconCart, "Receive Orders", "Platform receives farmer orders"),
			process(IconPackage, "Process Orders", "AgriConnect processes and coordinates"),
			process(IconTruck, "Handle Delivery", "Platform manages delivery logistics"),
			process(IconCheck, "Complete Transaction", "Platform processes payment and confirms delivery"),
			end(IconDocument, "Send Transaction Details", "Company receives transaction information and payment"),
		},
	},
	{Company, CompanyManageInventory.ID()}: {
		Flow:  CompanyManageInventory,
		Title: "Inventory & Logistics Management by AgriConnect",
		Tone:  TonePurple,
		Steps: []Node{
			process(IconStock, "Track Inventory", "Platform monitors company stock levels"),
			process(IconAlert, "Automated Alerts", "Platform sends low stock notifications"),
			process(IconUsers, "Coordinate Logistics", "Platform manages delivery crew assignments"),
			process(IconSettings, "Optimize Routes", "Platform optimizes delivery routes and schedules"),
			end(IconDocument, "Send Reports", "Company receives inventory and logistics reports"),
		},
	},
	{Company, CompanyDisputeHandling.ID()}: {
		Flow:  CompanyDisputeHandling,
		Title: "Dispute Reporting & Product Complaints Process",
		Tone:  ToneRed,
		Steps: []Node{
			process(IconAlert, "Quality Issues Raised", "Farmers report product quality issues"),
			process(IconUsers, "Platform Investigation", "Platform investigates the issue"),
			process(IconDocument, "Agent Feedback", "Resolution through agent feedback"),
			process(IconPackage, "Product Adjustment", "Company adjusts or replaces if necessary"),
			end(IconCheck, "Resolution", companyDone),
		},
	},
}

var cards = []RoleCard{
	{
		Role:        Farmer,
		Icon:        IconUser,
		Title:       "Farmer Role Flow",
		Description: "Complete journey from registration to selling crops and accessing agri-inputs",
		Tone:        ToneGreen,
		Features:    []string{"Order Agri-Inputs", "Post Crops for Sale", "Search Buyers", "Health Visits", "Issue Reporting"},
	},
	{
		Role:        Buyer,
		Icon:        IconCart,
		Title:       "Crop Buyer Role Flow",
		Description: "Browse crop listings, post requirements, and complete trade agreements",
		Tone:        ToneBlue,
		Features:    []string{"Browse Crop Listings", "Post Requirements", "Trade Negotiations", "Quality Assurance", "Secure Payments"},
	},
	{
		Role:        Company,
		Icon:        IconBuilding,
		Title:       "Company Role Flow",
		Description: "Manage agri-input listings, process orders, and handle inventory logistics",
		Tone:        TonePurple,
		Features:    []string{"List Agri-Inputs", "Manage Orders", "Inventory Control", "Quality Management", "Logistics Coordination"},
	},
}

// Overview is the short platform summary shown under the landing page role cards.
var Overview = []struct {
	Role    Role
	Icon    string
	Heading string
	Blurb   string
}{
	{Farmer, IconUser, "Farmers", "Access inputs, sell crops, get expert advice"},
	{Buyer, IconCart, "Buyers", "Source quality crops directly from farmers"},
	{Company, IconBuilding, "Companies", "Supply certified agri-inputs and services"},
}

const (
	PlatformName    = "AgriConnect"
	PlatformTagline = "Comprehensive Agricultural Platform - Connecting Farmers, Buyers, and Companies"
	PlatformIntro   = "Explore the complete user journey for each role in our ecosystem"
)
