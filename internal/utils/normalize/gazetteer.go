package normalize

// Alias tables used by nationality and department resolution. These are pure
// lookup data keyed by folded (lower-case, accent-stripped) tokens; the
// decomposition logic lives in nationality.go.

// nationalityAliases maps demonyms, capitals and major cities to canonical
// country names, covering what actually appears in the legacy registries.
var nationalityAliases = map[string]string{
	// Peru
	"peruano": "Perú", "peruana": "Perú", "peru": "Perú", "lima": "Perú",
	"nacional": "Perú",
	// South America
	"argentino": "Argentina", "argentina": "Argentina", "buenos aires": "Argentina",
	"boliviano": "Bolivia", "boliviana": "Bolivia", "bolivia": "Bolivia", "la paz": "Bolivia",
	"brasileno": "Brasil", "brasilena": "Brasil", "brasil": "Brasil", "brazil": "Brasil",
	"sao paulo": "Brasil", "rio de janeiro": "Brasil",
	"chileno": "Chile", "chilena": "Chile", "chile": "Chile", "santiago": "Chile",
	"colombiano": "Colombia", "colombiana": "Colombia", "colombia": "Colombia", "bogota": "Colombia",
	"ecuatoriano": "Ecuador", "ecuatoriana": "Ecuador", "ecuador": "Ecuador", "quito": "Ecuador",
	"guayaquil": "Ecuador",
	"paraguayo":  "Paraguay", "paraguaya": "Paraguay", "paraguay": "Paraguay", "asuncion": "Paraguay",
	"uruguayo": "Uruguay", "uruguaya": "Uruguay", "uruguay": "Uruguay", "montevideo": "Uruguay",
	"venezolano": "Venezuela", "venezolana": "Venezuela", "venezuela": "Venezuela", "caracas": "Venezuela",
	// North and Central America
	"mexicano": "México", "mexicana": "México", "mexico": "México",
	"estadounidense": "Estados Unidos", "americano": "Estados Unidos", "americana": "Estados Unidos",
	"norteamericano": "Estados Unidos", "norteamericana": "Estados Unidos",
	"new york": "Estados Unidos", "washington": "Estados Unidos",
	"canadiense": "Canadá", "canada": "Canadá", "ottawa": "Canadá", "toronto": "Canadá",
	"costarricense": "Costa Rica", "costa rica": "Costa Rica", "san jose": "Costa Rica",
	"cubano": "Cuba", "cubana": "Cuba", "cuba": "Cuba", "la habana": "Cuba",
	"panameno": "Panamá", "panamena": "Panamá", "panama": "Panamá",
	// Europe
	"espanol": "España", "espanola": "España", "espana": "España", "madrid": "España",
	"barcelona": "España",
	"frances":   "Francia", "francesa": "Francia", "francia": "Francia", "paris": "Francia",
	"aleman": "Alemania", "alemana": "Alemania", "alemania": "Alemania", "berlin": "Alemania",
	"italiano": "Italia", "italiana": "Italia", "italia": "Italia", "roma": "Italia",
	"ingles": "Reino Unido", "inglesa": "Reino Unido", "inglaterra": "Reino Unido",
	"britanico": "Reino Unido", "britanica": "Reino Unido", "londres": "Reino Unido",
	"holandes": "Países Bajos", "holandesa": "Países Bajos", "holanda": "Países Bajos",
	"amsterdam": "Países Bajos",
	"portugues": "Portugal", "portuguesa": "Portugal", "portugal": "Portugal", "lisboa": "Portugal",
	"suizo": "Suiza", "suiza": "Suiza", "ginebra": "Suiza",
	"sueco": "Suecia", "sueca": "Suecia", "suecia": "Suecia", "estocolmo": "Suecia",
	"ruso": "Rusia", "rusa": "Rusia", "rusia": "Rusia", "moscu": "Rusia",
	"irlandes": "Irlanda", "irlandesa": "Irlanda", "irlanda": "Irlanda", "dublin": "Irlanda",
	"belga": "Bélgica", "belgica": "Bélgica", "bruselas": "Bélgica",
	"austriaco": "Austria", "austriaca": "Austria", "austria": "Austria", "viena": "Austria",
	"polaco": "Polonia", "polaca": "Polonia", "polonia": "Polonia", "varsovia": "Polonia",
	// Asia and Oceania
	"japones": "Japón", "japonesa": "Japón", "japon": "Japón", "tokio": "Japón",
	"chino": "China", "china": "China", "pekin": "China", "beijing": "China",
	"coreano": "Corea del Sur", "coreana": "Corea del Sur", "corea": "Corea del Sur",
	"seul": "Corea del Sur",
	"indio": "India", "india": "India", "nueva delhi": "India",
	"israeli": "Israel", "israel": "Israel", "tel aviv": "Israel", "jerusalen": "Israel",
	"australiano": "Australia", "australiana": "Australia", "australia": "Australia",
	"sidney": "Australia", "canberra": "Australia",
	"neozelandes": "Nueva Zelanda", "nueva zelanda": "Nueva Zelanda", "auckland": "Nueva Zelanda",
}

// countryNames is the secondary dictionary of plain country names, folded.
var countryNames = map[string]string{
	"peru": "Perú", "argentina": "Argentina", "bolivia": "Bolivia", "brasil": "Brasil",
	"chile": "Chile", "colombia": "Colombia", "ecuador": "Ecuador", "paraguay": "Paraguay",
	"uruguay": "Uruguay", "venezuela": "Venezuela", "mexico": "México",
	"estados unidos": "Estados Unidos", "canada": "Canadá", "costa rica": "Costa Rica",
	"cuba": "Cuba", "panama": "Panamá", "espana": "España", "francia": "Francia",
	"alemania": "Alemania", "italia": "Italia", "reino unido": "Reino Unido",
	"paises bajos": "Países Bajos", "portugal": "Portugal", "suiza": "Suiza",
	"suecia": "Suecia", "rusia": "Rusia", "irlanda": "Irlanda", "belgica": "Bélgica",
	"austria": "Austria", "polonia": "Polonia", "japon": "Japón", "china": "China",
	"corea del sur": "Corea del Sur", "india": "India", "israel": "Israel",
	"australia": "Australia", "nueva zelanda": "Nueva Zelanda",
}

// countryAbbreviations is the hand-coded table of shorthand the old books used.
var countryAbbreviations = map[string]string{
	"eeuu": "Estados Unidos", "ee.uu": "Estados Unidos", "ee.uu.": "Estados Unidos",
	"ee uu": "Estados Unidos", "usa": "Estados Unidos", "u.s.a": "Estados Unidos",
	"us": "Estados Unidos", "uk": "Reino Unido", "u.k": "Reino Unido",
	"rfa": "Alemania", "nz": "Nueva Zelanda", "bra": "Brasil", "arg": "Argentina",
	"col": "Colombia", "ven": "Venezuela", "ecu": "Ecuador", "bol": "Bolivia",
	"chi": "Chile", "per": "Perú",
}

// peruvianDepartments maps folded department names and well-known cities to the
// canonical first-level administrative region. Used to reclassify "nationality"
// cells that actually name a domestic region.
var peruvianDepartments = map[string]string{
	"amazonas": "Amazonas", "chachapoyas": "Amazonas",
	"ancash": "Áncash", "huaraz": "Áncash", "chimbote": "Áncash",
	"apurimac": "Apurímac", "abancay": "Apurímac", "andahuaylas": "Apurímac",
	"arequipa": "Arequipa",
	"ayacucho": "Ayacucho", "huamanga": "Ayacucho",
	"cajamarca": "Cajamarca", "jaen": "Cajamarca",
	"callao": "Callao",
	"cusco":  "Cusco", "cuzco": "Cusco", "machu picchu": "Cusco",
	"huancavelica": "Huancavelica",
	"huanuco":      "Huánuco", "tingo maria": "Huánuco",
	"ica": "Ica", "chincha": "Ica", "pisco": "Ica", "nazca": "Ica",
	"junin": "Junín", "huancayo": "Junín", "tarma": "Junín", "la oroya": "Junín",
	"la libertad": "La Libertad", "trujillo": "La Libertad",
	"lambayeque": "Lambayeque", "chiclayo": "Lambayeque",
	"lima": "Lima", "huacho": "Lima", "barranca": "Lima",
	"loreto": "Loreto", "iquitos": "Loreto",
	"madre de dios": "Madre de Dios", "puerto maldonado": "Madre de Dios",
	"moquegua": "Moquegua", "ilo": "Moquegua",
	"pasco": "Pasco", "cerro de pasco": "Pasco",
	"piura": "Piura", "sullana": "Piura", "talara": "Piura",
	"puno": "Puno", "juliaca": "Puno",
	"san martin": "San Martín", "tarapoto": "San Martín", "moyobamba": "San Martín",
	"tacna": "Tacna",
	"tumbes": "Tumbes",
	"ucayali": "Ucayali", "pucallpa": "Ucayali",
}
