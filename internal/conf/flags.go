package conf

// Catalog locations. The defaults are the file names the catalogs are
// published under, read from the working directory.
var (
	DataDir      = NewStringFlag("data_dir", "Directory holding the catalog files", ".")
	LSSFile      = NewStringFlag("lss_file", "Background large-scale structure sample", "SDSS_DR10_galaxy_local.txt")
	IsolatedFile = NewStringFlag("isolated_file", "Isolated galaxies sample", "table1.txt")
	PairsFile    = NewStringFlag("pairs_file", "Isolated pairs sample", "table2.txt")
	TripletsFile = NewStringFlag("triplets_file", "Isolated triplets sample", "table3.txt")
)

// Mode selects which coordinate drives the slice: "redshift" opens the
// Mollweide projection, "declination" opens the wedge diagram.
var Mode = NewStringFlag("mode", "Slice coordinate: redshift or declination", "redshift")
