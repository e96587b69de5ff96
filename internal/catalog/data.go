// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// builtinEntries lists the compounds compiled into the binary, in display
// order. CIDs are the PubChem identifiers so remote results for the same
// compound deduplicate against catalog matches.
var builtinEntries = []Entry{
	{CID: 962, Name: "Water", Formula: "H2O", Weight: 18.015},
	{CID: 702, Name: "Ethanol", Formula: "C2H6O", Weight: 46.070},
	{CID: 887, Name: "Methanol", Formula: "CH4O", Weight: 32.042},
	{CID: 180, Name: "Acetone", Formula: "C3H6O", Weight: 58.080},
	{CID: 176, Name: "Acetic acid", Formula: "C2H4O2", Weight: 60.052},
	{CID: 222, Name: "Ammonia", Formula: "NH3", Weight: 17.031},
	{CID: 297, Name: "Methane", Formula: "CH4", Weight: 16.043},
	{CID: 6334, Name: "Propane", Formula: "C3H8", Weight: 44.097},
	{CID: 7843, Name: "Butane", Formula: "C4H10", Weight: 58.122},
	{CID: 241, Name: "Benzene", Formula: "C6H6", Weight: 78.114},
	{CID: 1140, Name: "Toluene", Formula: "C7H8", Weight: 92.141},
	{CID: 280, Name: "Carbon dioxide", Formula: "CO2", Weight: 44.009},
	{CID: 783, Name: "Hydrogen", Formula: "H2", Weight: 2.016},
	{CID: 977, Name: "Oxygen", Formula: "O2", Weight: 31.998},
	{CID: 947, Name: "Nitrogen", Formula: "N2", Weight: 28.014},
	{CID: 313, Name: "Hydrochloric acid", Formula: "HCl", Weight: 36.458},
	{CID: 1118, Name: "Sulfuric acid", Formula: "H2SO4", Weight: 98.079},
	{CID: 14798, Name: "Sodium hydroxide", Formula: "NaOH", Weight: 39.997},
	{CID: 5234, Name: "Sodium chloride", Formula: "NaCl", Weight: 58.443},
	{CID: 5793, Name: "Glucose", Formula: "C6H12O6", Weight: 180.156},
	{CID: 5988, Name: "Sucrose", Formula: "C12H22O11", Weight: 342.297},
	{CID: 2244, Name: "Aspirin", Formula: "C9H8O4", Weight: 180.159},
	{CID: 1983, Name: "Acetaminophen", Formula: "C8H9NO2", Weight: 151.163},
	{CID: 3672, Name: "Ibuprofen", Formula: "C13H18O2", Weight: 206.285},
	{CID: 2519, Name: "Caffeine", Formula: "C8H10N4O2", Weight: 194.191},
}
