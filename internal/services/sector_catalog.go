package services

import (
	"math"

	"msme-carbon/internal/models"
)

// regionalFactors scale a sector's default weightages per macro-region.
// Energy follows grid carbon intensity, water follows groundwater stress.
var regionalFactors = map[models.Region]models.CarbonWeightages{
	models.RegionNorth:   {Energy: 1.05, Transport: 1.00, Materials: 1.00, Waste: 1.00, Water: 1.10},
	models.RegionSouth:   {Energy: 0.90, Transport: 1.00, Materials: 1.00, Waste: 0.95, Water: 1.05},
	models.RegionEast:    {Energy: 1.15, Transport: 1.05, Materials: 1.00, Waste: 1.05, Water: 0.90},
	models.RegionWest:    {Energy: 1.00, Transport: 0.95, Materials: 1.00, Waste: 1.00, Water: 1.10},
	models.RegionCentral: {Energy: 1.10, Transport: 1.05, Materials: 1.00, Waste: 1.00, Water: 1.00},
}

// regionalWeightages builds the five-region table plus the default entry from a base profile
func regionalWeightages(base models.CarbonWeightages) map[models.Region]models.CarbonWeightages {
	table := make(map[models.Region]models.CarbonWeightages, len(regionalFactors)+1)
	table[models.RegionDefault] = base
	for region, f := range regionalFactors {
		table[region] = models.CarbonWeightages{
			Energy:    round3(base.Energy * f.Energy),
			Transport: round3(base.Transport * f.Transport),
			Materials: round3(base.Materials * f.Materials),
			Waste:     round3(base.Waste * f.Waste),
			Water:     round3(base.Water * f.Water),
		}
	}
	return table
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// defaultIndicatorTags are sender tags that identify a sector in addition to the
// indicators derived from its process and transaction vocabulary
func defaultIndicatorTags() map[models.Sector][]string {
	return map[models.Sector][]string{
		models.SectorManufacturing:     {"mfg", "manufacturing", "industries", "factory"},
		models.SectorTrading:           {"traders", "trading", "wholesale", "distributors"},
		models.SectorTextiles:          {"tex", "textile", "textiles", "fabrics", "weavers"},
		models.SectorLogistics:         {"logistics", "transport", "roadlines", "cargo", "couriers"},
		models.SectorFoodProcessing:    {"foods", "dairy", "bakery", "agrofoods"},
		models.SectorAgriculture:       {"agri", "kisan", "farms", "seeds"},
		models.SectorConstruction:      {"builders", "infra", "constructions", "developers"},
		models.SectorChemicals:         {"chem", "chemicals", "dyestuff"},
		models.SectorPharmaceuticals:   {"pharma", "drugs", "lifesciences", "healthcare"},
		models.SectorElectronics:       {"electronics", "electricals", "infotronics"},
		models.SectorAutomotive:        {"auto", "motors", "autoparts", "automobiles"},
		models.SectorHandicrafts:       {"handicrafts", "crafts", "artisans", "handloom"},
		models.SectorPrintingPackaging: {"printers", "press", "packaging", "packers"},
		models.SectorPlastics:          {"plast", "plastics", "polymers"},
		models.SectorMetalFabrication:  {"steel", "metals", "engineering", "fabricators"},
		models.SectorLeather:           {"leather", "tannery", "footwear"},
		models.SectorFurniture:         {"furniture", "furnishers", "interiors"},
		models.SectorRetail:            {"mart", "stores", "kirana", "supermarket"},
		models.SectorHospitality:       {"hotel", "hotels", "restaurant", "caterers", "resorts"},
		models.SectorITServices:        {"infotech", "technologies", "software", "systems"},
	}
}

// defaultSectorModels returns the built-in sector catalog in declaration order
func defaultSectorModels() []models.SectorModel {
	return []models.SectorModel{
		{
			Sector:    models.SectorManufacturing,
			Label:     "Manufacturing",
			Processes: []string{"assembly", "machining", "casting", "moulding", "fabrication", "heat treatment"},
			Machinery: []string{"lathe", "cnc", "hydraulic press", "compressor", "conveyor"},
			Inputs:    []string{"raw material", "components", "spare parts", "lubricant"},
			Outputs:   []string{"finished goods", "industrial equipment", "machine parts"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"raw material", "components", "tooling"},
				models.TransactionSale:       {"finished goods", "dispatch"},
				models.TransactionExpense:    {"factory maintenance", "job work"},
				models.TransactionUtility:    {"factory electricity", "industrial power"},
				models.TransactionTransport:  {"freight inward"},
				models.TransactionInvestment: {"plant machinery", "factory shed"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.35, Transport: 0.15, Materials: 0.30, Waste: 0.12, Water: 0.08}),
		},
		{
			Sector:    models.SectorTrading,
			Label:     "Trading",
			Processes: []string{"wholesale", "distribution", "resale", "stocking", "repacking"},
			Machinery: []string{"forklift", "pallet truck", "weighing scale"},
			Inputs:    []string{"bulk stock", "traded goods", "consignment"},
			Outputs:   []string{"resale goods", "bulk supply"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"bulk stock", "consignment", "indent"},
				models.TransactionSale:       {"trade invoice", "dealer margin", "commission"},
				models.TransactionExpense:    {"godown rent", "brokerage"},
				models.TransactionUtility:    {"godown electricity"},
				models.TransactionTransport:  {"lorry hire", "cartage"},
				models.TransactionInvestment: {"godown"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.15, Transport: 0.40, Materials: 0.25, Waste: 0.12, Water: 0.08}),
		},
		{
			Sector:    models.SectorTextiles,
			Label:     "Textiles",
			Processes: []string{"weaving", "spinning", "dyeing", "knitting", "bleaching", "embroidery"},
			Machinery: []string{"power loom", "handloom", "ring frame", "stenter", "sewing machine"},
			Inputs:    []string{"yarn", "cotton", "polyester", "silk", "viscose"},
			Outputs:   []string{"fabric", "garment", "saree", "grey cloth", "apparel"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"yarn", "raw cotton", "zari"},
				models.TransactionSale:       {"fabric", "garment", "textile"},
				models.TransactionExpense:    {"loom repair", "tailoring"},
				models.TransactionUtility:    {"loom power"},
				models.TransactionTransport:  {"bale transport"},
				models.TransactionInvestment: {"new loom", "textile machinery"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.30, Transport: 0.10, Materials: 0.25, Waste: 0.15, Water: 0.20}),
		},
		{
			Sector:    models.SectorLogistics,
			Label:     "Logistics",
			Processes: []string{"freight forwarding", "warehousing", "last mile delivery", "courier", "haulage"},
			Machinery: []string{"truck", "trailer", "container", "reach stacker"},
			Inputs:    []string{"diesel", "tyres", "toll"},
			Outputs:   []string{"shipment", "consignment note", "lorry receipt"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"diesel", "tyres"},
				models.TransactionSale:       {"freight charges", "delivery charges"},
				models.TransactionExpense:    {"fastag", "toll", "driver bhatta"},
				models.TransactionUtility:    {"warehouse power"},
				models.TransactionTransport:  {"e way bill", "fleet"},
				models.TransactionInvestment: {"new truck", "fleet expansion"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.10, Transport: 0.60, Materials: 0.10, Waste: 0.10, Water: 0.10}),
		},
		{
			Sector:    models.SectorFoodProcessing,
			Label:     "Food Processing",
			Processes: []string{"milling", "roasting", "pasteurization", "frying", "pickling", "baking"},
			Machinery: []string{"flour mill", "oven", "cold storage", "pulverizer", "sealing machine"},
			Inputs:    []string{"wheat", "pulses", "edible oil", "spices", "milk"},
			Outputs:   []string{"snacks", "namkeen", "flour", "papad", "biscuits"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"wheat", "edible oil", "spices"},
				models.TransactionSale:       {"namkeen", "snacks"},
				models.TransactionExpense:    {"fssai", "food testing"},
				models.TransactionUtility:    {"cold storage power"},
				models.TransactionTransport:  {"reefer"},
				models.TransactionInvestment: {"processing unit"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.30, Transport: 0.15, Materials: 0.25, Waste: 0.15, Water: 0.15}),
		},
		{
			Sector:    models.SectorAgriculture,
			Label:     "Agriculture",
			Processes: []string{"harvesting", "sowing", "irrigation", "threshing", "ploughing"},
			Machinery: []string{"tractor", "harvester", "drip system", "sprayer"},
			Inputs:    []string{"fertilizer", "urea", "pesticide", "seedlings"},
			Outputs:   []string{"paddy", "sugarcane", "vegetables", "crop produce"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"fertilizer", "urea", "pesticide"},
				models.TransactionSale:       {"mandi", "crop sale"},
				models.TransactionExpense:    {"farm labour"},
				models.TransactionUtility:    {"pump set power"},
				models.TransactionTransport:  {"tractor trolley"},
				models.TransactionInvestment: {"tractor loan", "farm land"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.15, Transport: 0.10, Materials: 0.30, Waste: 0.10, Water: 0.35}),
		},
		{
			Sector:    models.SectorConstruction,
			Label:     "Construction",
			Processes: []string{"excavation", "concreting", "plastering", "masonry", "shuttering"},
			Machinery: []string{"concrete mixer", "excavator", "jcb", "scaffolding", "crane"},
			Inputs:    []string{"cement", "sand", "bricks", "tmt bars", "aggregate"},
			Outputs:   []string{"building", "site work", "civil work"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"cement", "bricks", "sand"},
				models.TransactionSale:       {"running bill", "contract payment"},
				models.TransactionExpense:    {"site labour", "contractor"},
				models.TransactionUtility:    {"site power"},
				models.TransactionTransport:  {"tipper"},
				models.TransactionInvestment: {"jcb purchase"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.20, Transport: 0.15, Materials: 0.45, Waste: 0.12, Water: 0.08}),
		},
		{
			Sector:    models.SectorChemicals,
			Label:     "Chemicals",
			Processes: []string{"distillation", "blending", "synthesis", "neutralization", "formulation"},
			Machinery: []string{"reactor", "boiler", "centrifuge", "distillation column"},
			Inputs:    []string{"solvent", "caustic soda", "sulphuric acid", "reagent"},
			Outputs:   []string{"dyes", "detergent", "adhesive", "pigment"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"solvent", "caustic soda", "acid"},
				models.TransactionSale:       {"pigment", "adhesive"},
				models.TransactionExpense:    {"effluent treatment", "pollution control"},
				models.TransactionUtility:    {"boiler fuel"},
				models.TransactionTransport:  {"tanker"},
				models.TransactionInvestment: {"reactor vessel"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.35, Transport: 0.10, Materials: 0.25, Waste: 0.20, Water: 0.10}),
		},
		{
			Sector:    models.SectorPharmaceuticals,
			Label:     "Pharmaceuticals",
			Processes: []string{"granulation", "tableting", "encapsulation", "sterilization", "coating"},
			Machinery: []string{"autoclave", "tablet press", "blister packing machine", "fluid bed dryer"},
			Inputs:    []string{"api", "excipients", "gelatin", "blister foil"},
			Outputs:   []string{"tablets", "capsules", "syrup", "ointment"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"excipients", "gelatin"},
				models.TransactionSale:       {"tablets", "capsules", "medicines"},
				models.TransactionExpense:    {"drug license", "gmp audit"},
				models.TransactionUtility:    {"clean room power"},
				models.TransactionTransport:  {"cold chain"},
				models.TransactionInvestment: {"clean room"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.35, Transport: 0.10, Materials: 0.25, Waste: 0.15, Water: 0.15}),
		},
		{
			Sector:    models.SectorElectronics,
			Label:     "Electronics",
			Processes: []string{"soldering", "pcb assembly", "wiring", "testing", "calibration"},
			Machinery: []string{"reflow oven", "pick and place", "oscilloscope", "soldering station"},
			Inputs:    []string{"pcb", "resistors", "capacitors", "semiconductors", "copper wire"},
			Outputs:   []string{"led lights", "inverter", "circuit boards", "switchgear"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"pcb", "capacitors", "semiconductors"},
				models.TransactionSale:       {"inverter", "led lights"},
				models.TransactionExpense:    {"bis certification"},
				models.TransactionUtility:    {"smt line power"},
				models.TransactionTransport:  {"air cargo"},
				models.TransactionInvestment: {"smt line"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.40, Transport: 0.10, Materials: 0.30, Waste: 0.15, Water: 0.05}),
		},
		{
			Sector:    models.SectorAutomotive,
			Label:     "Automotive",
			Processes: []string{"forging", "stamping", "painting", "servicing", "denting"},
			Machinery: []string{"wheel aligner", "paint booth", "hoist", "forging hammer"},
			Inputs:    []string{"engine oil", "brake pads", "batteries", "auto components"},
			Outputs:   []string{"vehicle", "two wheeler", "spare kit", "chassis"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"brake pads", "engine oil", "auto components"},
				models.TransactionSale:       {"vehicle sale", "service bill"},
				models.TransactionExpense:    {"workshop rent"},
				models.TransactionUtility:    {"workshop power"},
				models.TransactionTransport:  {"vehicle towing"},
				models.TransactionInvestment: {"service bay"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.30, Transport: 0.20, Materials: 0.30, Waste: 0.12, Water: 0.08}),
		},
		{
			Sector:    models.SectorHandicrafts,
			Label:     "Handicrafts",
			Processes: []string{"carving", "pottery", "block printing", "beadwork", "inlay"},
			Machinery: []string{"potter wheel", "kiln", "hand tools"},
			Inputs:    []string{"clay", "bamboo", "cane", "brass sheet", "natural dyes"},
			Outputs:   []string{"artware", "terracotta", "figurines", "decor items"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"clay", "bamboo", "cane"},
				models.TransactionSale:       {"craft exhibition", "artware"},
				models.TransactionExpense:    {"artisan wages"},
				models.TransactionUtility:    {"kiln firing"},
				models.TransactionTransport:  {"craft shipment"},
				models.TransactionInvestment: {"craft cluster"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.15, Transport: 0.15, Materials: 0.40, Waste: 0.15, Water: 0.15}),
		},
		{
			Sector:    models.SectorPrintingPackaging,
			Label:     "Printing & Packaging",
			Processes: []string{"offset printing", "lamination", "die cutting", "corrugation", "binding"},
			Machinery: []string{"offset machine", "flexo press", "corrugator", "guillotine"},
			Inputs:    []string{"kraft paper", "printing ink", "paperboard", "duplex board"},
			Outputs:   []string{"cartons", "labels", "brochures", "corrugated boxes"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"kraft paper", "printing ink", "duplex board"},
				models.TransactionSale:       {"cartons", "corrugated boxes"},
				models.TransactionExpense:    {"plate making"},
				models.TransactionUtility:    {"press power"},
				models.TransactionTransport:  {"carton delivery"},
				models.TransactionInvestment: {"offset machine"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.30, Transport: 0.10, Materials: 0.35, Waste: 0.15, Water: 0.10}),
		},
		{
			Sector:    models.SectorPlastics,
			Label:     "Plastics",
			Processes: []string{"injection moulding", "extrusion", "blow moulding", "thermoforming", "granulating"},
			Machinery: []string{"extruder", "injection moulding machine", "chiller", "granulator"},
			Inputs:    []string{"hdpe", "ldpe", "pvc resin", "polypropylene", "masterbatch"},
			Outputs:   []string{"pipes", "containers", "plastic film", "jerry cans"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"hdpe", "pvc resin", "masterbatch"},
				models.TransactionSale:       {"pvc pipes", "plastic film"},
				models.TransactionExpense:    {"mould repair"},
				models.TransactionUtility:    {"extruder power"},
				models.TransactionTransport:  {"granule delivery"},
				models.TransactionInvestment: {"new mould"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.35, Transport: 0.10, Materials: 0.30, Waste: 0.20, Water: 0.05}),
		},
		{
			Sector:    models.SectorMetalFabrication,
			Label:     "Metal Fabrication",
			Processes: []string{"welding", "galvanizing", "sheet bending", "grinding", "powder coating"},
			Machinery: []string{"welding set", "press brake", "plasma cutter", "shearing machine"},
			Inputs:    []string{"ms sheet", "ss sheet", "steel rod", "angle iron", "welding rod"},
			Outputs:   []string{"grills", "gates", "structures", "steel almirah"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"ms sheet", "angle iron", "welding rod"},
				models.TransactionSale:       {"fabrication job", "structure supply"},
				models.TransactionExpense:    {"gas refill"},
				models.TransactionUtility:    {"welding power"},
				models.TransactionTransport:  {"steel haulage"},
				models.TransactionInvestment: {"press brake"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.40, Transport: 0.10, Materials: 0.35, Waste: 0.10, Water: 0.05}),
		},
		{
			Sector:    models.SectorLeather,
			Label:     "Leather",
			Processes: []string{"tanning", "stitching", "skiving", "finishing", "chrome tanning"},
			Machinery: []string{"tanning drum", "skiving machine", "splitting machine"},
			Inputs:    []string{"hides", "skins", "chrome", "leather chemicals"},
			Outputs:   []string{"shoes", "handbags", "belts", "leather goods"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"raw hides", "skins"},
				models.TransactionSale:       {"leather goods", "shoes"},
				models.TransactionExpense:    {"tannery effluent"},
				models.TransactionUtility:    {"tannery power"},
				models.TransactionTransport:  {"hide transport"},
				models.TransactionInvestment: {"tanning drum"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.20, Transport: 0.10, Materials: 0.30, Waste: 0.20, Water: 0.20}),
		},
		{
			Sector:    models.SectorFurniture,
			Label:     "Furniture",
			Processes: []string{"carpentry", "polishing", "upholstery", "veneering", "joinery"},
			Machinery: []string{"planer", "router", "edge bander", "panel saw"},
			Inputs:    []string{"plywood", "teak", "laminate", "mdf", "hardware fittings"},
			Outputs:   []string{"sofa", "wardrobe", "dining table", "modular kitchen"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"plywood", "laminate", "teak"},
				models.TransactionSale:       {"sofa", "wardrobe"},
				models.TransactionExpense:    {"carpenter wages"},
				models.TransactionUtility:    {"workshop electricity"},
				models.TransactionTransport:  {"furniture delivery"},
				models.TransactionInvestment: {"edge bander"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.20, Transport: 0.15, Materials: 0.45, Waste: 0.15, Water: 0.05}),
		},
		{
			Sector:    models.SectorRetail,
			Label:     "Retail",
			Processes: []string{"merchandising", "billing", "shelf stocking", "home delivery"},
			Machinery: []string{"pos terminal", "barcode scanner", "display fridge"},
			Inputs:    []string{"fmcg stock", "groceries", "packaged goods"},
			Outputs:   []string{"counter sales", "retail sales"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"fmcg stock", "groceries"},
				models.TransactionSale:       {"counter sales", "customer purchase"},
				models.TransactionExpense:    {"shop rent", "shop staff"},
				models.TransactionUtility:    {"shop electricity"},
				models.TransactionTransport:  {"stock pickup"},
				models.TransactionInvestment: {"shop renovation"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.25, Transport: 0.25, Materials: 0.25, Waste: 0.15, Water: 0.10}),
		},
		{
			Sector:    models.SectorHospitality,
			Label:     "Hospitality",
			Processes: []string{"catering", "housekeeping", "room service", "banqueting"},
			Machinery: []string{"commercial kitchen", "tandoor", "dishwasher", "laundry machine"},
			Inputs:    []string{"lpg cylinder", "vegetables supply", "linen", "toiletries"},
			Outputs:   []string{"room nights", "meals", "banquet"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"lpg cylinder", "linen", "toiletries"},
				models.TransactionSale:       {"room booking", "food bill"},
				models.TransactionExpense:    {"housekeeping staff"},
				models.TransactionUtility:    {"hotel electricity"},
				models.TransactionTransport:  {"guest pickup"},
				models.TransactionInvestment: {"room renovation"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.35, Transport: 0.10, Materials: 0.20, Waste: 0.20, Water: 0.15}),
		},
		{
			Sector:    models.SectorITServices,
			Label:     "IT Services",
			Processes: []string{"software development", "hosting", "maintenance contract", "data processing"},
			Machinery: []string{"servers", "laptops", "ups", "networking equipment"},
			Inputs:    []string{"cloud subscription", "software license", "bandwidth"},
			Outputs:   []string{"software", "web application", "it support"},
			Transactions: map[models.TransactionCategory][]string{
				models.TransactionPurchase:   {"laptops", "software license", "cloud subscription"},
				models.TransactionSale:       {"development invoice", "amc invoice"},
				models.TransactionExpense:    {"coworking", "domain renewal"},
				models.TransactionUtility:    {"internet bill", "broadband"},
				models.TransactionTransport:  {"hardware courier"},
				models.TransactionInvestment: {"server rack"},
			},
			Weightages: regionalWeightages(models.CarbonWeightages{Energy: 0.55, Transport: 0.10, Materials: 0.15, Waste: 0.15, Water: 0.05}),
		},
	}
}
