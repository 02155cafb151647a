package i18n

import "github.com/example/evn/internal/core/evn"

var catalogues = map[Lang]*Messages{
	Polish:  polish,
	English: english,
	German:  german,
}

var polish = &Messages{
	Lang:          Polish,
	ValidEVN:      "Kod EVN jest poprawny!",
	InvalidEVN:    "Kod EVN jest niepoprawny",
	EnterEVN:      "Wprowadź kod EVN",
	EVNInfo:       "Informacje o kodzie EVN:",
	OriginalCode:  "Kod oryginalny:",
	FormattedCode: "Kod sformatowany:",
	Country:       "Kraj:",
	VehicleType:   "Typ pojazdu:",
	Locomotive:    "Typ lokomotywy:",
	Technical:     "Charakterystyki techniczne:",
	SerialNumber:  "Numer seryjny:",
	CheckDigit:    "Cyfra kontrolna:",
	Generated:     "Wygenerowany kod EVN:",
	Formatted:     "Sformatowany:",
	Random:        "Losowy",
	LanguageSet:   "Ustawiono język:",
	LanguageIs:    "Bieżący język:",
	NoCountries:   "Brak krajów w rejestrze",

	ValidationError: "Wystąpił błąd podczas walidacji",
	DecodingError:   "Wystąpił błąd podczas dekodowania",
	GenerationError: "Wystąpił błąd podczas generowania",

	categories: map[evn.Category]string{
		evn.TractionVehicle: "Pojazd trakcyjny",
		evn.PassengerWagon:  "Wagon pasażerski",
		evn.FreightWagon:    "Wagon towarowy",
		evn.SpecialVehicle:  "Pojazd specjalny",
	},
	subTypes: [9]string{
		"Lokomotywa parowa",
		"Lokomotywa elektryczna",
		"Lokomotywa spalinowa",
		"Elektryczny zespół trakcyjny",
		"Spalinowy zespół trakcyjny",
		"Akumulatorowy zespół trakcyjny",
		"Hybrydowy zespół trakcyjny",
		"Wagon napędowy",
		"Lokomotywa manewrowa",
	},
	errors: map[evn.ErrorKind]string{
		evn.KindInvalidLength:      "Nieprawidłowa długość EVN - musi mieć 12 cyfr",
		evn.KindInvalidCountryCode: "Nieprawidłowy kod kraju",
		evn.KindInvalidChecksum:    "Nieprawidłowa suma kontrolna EVN",
		evn.KindInvalidSubType:     "Nieprawidłowy typ lokomotywy",
	},
	countryNames: map[string]string{
		"FI": "Finlandia",
		"RU": "Rosja",
		"BY": "Białoruś",
		"UA": "Ukraina",
		"MD": "Mołdawia",
		"LT": "Litwa",
		"LV": "Łotwa",
		"EE": "Estonia",
		"KZ": "Kazachstan",
		"GE": "Gruzja",
		"UZ": "Uzbekistan",
		"KP": "Korea Północna",
		"MN": "Mongolia",
		"VN": "Wietnam",
		"CN": "Chiny",
		"CU": "Kuba",
		"AL": "Albania",
		"JP": "Japonia",
		"BA": "Bośnia i Hercegowina",
		"PL": "Polska",
		"BG": "Bułgaria",
		"RO": "Rumunia",
		"CZ": "Czechy",
		"HU": "Węgry",
		"SK": "Słowacja",
		"AZ": "Azerbejdżan",
		"AM": "Armenia",
		"KG": "Kirgistan",
		"IE": "Irlandia",
		"KR": "Korea Południowa",
		"ME": "Czarnogóra",
		"MK": "Macedonia Północna",
		"TJ": "Tadżykistan",
		"TM": "Turkmenistan",
		"AF": "Afganistan",
		"GB": "Wielka Brytania",
		"ES": "Hiszpania",
		"RS": "Serbia",
		"GR": "Grecja",
		"SE": "Szwecja",
		"TR": "Turcja",
		"NO": "Norwegia",
		"HR": "Chorwacja",
		"SI": "Słowenia",
		"DE": "Niemcy",
		"AT": "Austria",
		"LU": "Luksemburg",
		"IT": "Włochy",
		"NL": "Holandia",
		"CH": "Szwajcaria",
		"DK": "Dania",
		"FR": "Francja",
		"BE": "Belgia",
		"EG": "Egipt",
		"TN": "Tunezja",
		"DZ": "Algieria",
		"MA": "Maroko",
		"PT": "Portugalia",
		"IL": "Izrael",
		"IR": "Iran",
		"SY": "Syria",
		"LB": "Liban",
		"IQ": "Irak",
	},
}

var english = &Messages{
	Lang:          English,
	ValidEVN:      "EVN code is valid!",
	InvalidEVN:    "EVN code is invalid",
	EnterEVN:      "Enter EVN code",
	EVNInfo:       "EVN Code Information:",
	OriginalCode:  "Original code:",
	FormattedCode: "Formatted code:",
	Country:       "Country:",
	VehicleType:   "Vehicle type:",
	Locomotive:    "Locomotive type:",
	Technical:     "Technical characteristics:",
	SerialNumber:  "Serial number:",
	CheckDigit:    "Check digit:",
	Generated:     "Generated EVN code:",
	Formatted:     "Formatted:",
	Random:        "Random",
	LanguageSet:   "Language set:",
	LanguageIs:    "Current language:",
	NoCountries:   "No countries in the registry",

	ValidationError: "An error occurred during validation",
	DecodingError:   "An error occurred during decoding",
	GenerationError: "An error occurred during generation",

	categories: map[evn.Category]string{
		evn.TractionVehicle: "Traction Vehicle",
		evn.PassengerWagon:  "Passenger Wagon",
		evn.FreightWagon:    "Freight Wagon",
		evn.SpecialVehicle:  "Special Vehicle",
	},
	subTypes: [9]string{
		"Steam Locomotive",
		"Electric Locomotive",
		"Diesel Locomotive",
		"Electric Multiple Unit",
		"Diesel Multiple Unit",
		"Battery Multiple Unit",
		"Hybrid Multiple Unit",
		"Power Car",
		"Shunting Locomotive",
	},
	errors: map[evn.ErrorKind]string{
		evn.KindInvalidLength:      "Invalid EVN length - must be 12 digits",
		evn.KindInvalidCountryCode: "Invalid country code",
		evn.KindInvalidChecksum:    "Invalid EVN checksum",
		evn.KindInvalidSubType:     "Invalid locomotive type",
	},
	// Registry names are English already.
	countryNames: map[string]string{},
}

var german = &Messages{
	Lang:          German,
	ValidEVN:      "EVN-Code ist gültig!",
	InvalidEVN:    "EVN-Code ist ungültig",
	EnterEVN:      "EVN-Code eingeben",
	EVNInfo:       "EVN-Code Informationen:",
	OriginalCode:  "Originalcode:",
	FormattedCode: "Formatierter Code:",
	Country:       "Land:",
	VehicleType:   "Fahrzeugtyp:",
	Locomotive:    "Lokomotivtyp:",
	Technical:     "Technische Merkmale:",
	SerialNumber:  "Seriennummer:",
	CheckDigit:    "Prüfziffer:",
	Generated:     "Generierter EVN-Code:",
	Formatted:     "Formatiert:",
	Random:        "Zufällig",
	LanguageSet:   "Sprache gesetzt:",
	LanguageIs:    "Aktuelle Sprache:",
	NoCountries:   "Keine Länder im Register",

	ValidationError: "Ein Fehler ist bei der Validierung aufgetreten",
	DecodingError:   "Ein Fehler ist bei der Dekodierung aufgetreten",
	GenerationError: "Ein Fehler ist bei der Generierung aufgetreten",

	categories: map[evn.Category]string{
		evn.TractionVehicle: "Triebfahrzeug",
		evn.PassengerWagon:  "Personenwagen",
		evn.FreightWagon:    "Güterwagen",
		evn.SpecialVehicle:  "Spezialfahrzeug",
	},
	subTypes: [9]string{
		"Dampflokomotive",
		"Elektrolokomotive",
		"Diesellokomotive",
		"Elektrischer Triebzug",
		"Diesel-Triebzug",
		"Batterie-Triebzug",
		"Hybrid-Triebzug",
		"Triebwagen",
		"Rangierlokomotive",
	},
	errors: map[evn.ErrorKind]string{
		evn.KindInvalidLength:      "Ungültige EVN-Länge - muss 12 Ziffern haben",
		evn.KindInvalidCountryCode: "Ungültiger Ländercode",
		evn.KindInvalidChecksum:    "Ungültige EVN-Prüfsumme",
		evn.KindInvalidSubType:     "Ungültiger Lokomotivtyp",
	},
	countryNames: map[string]string{
		"FI": "Finnland",
		"RU": "Russland",
		"BY": "Belarus",
		"UA": "Ukraine",
		"MD": "Moldau",
		"LT": "Litauen",
		"LV": "Lettland",
		"EE": "Estland",
		"KZ": "Kasachstan",
		"GE": "Georgien",
		"UZ": "Usbekistan",
		"KP": "Nordkorea",
		"MN": "Mongolei",
		"VN": "Vietnam",
		"CN": "China",
		"CU": "Kuba",
		"AL": "Albanien",
		"JP": "Japan",
		"BA": "Bosnien und Herzegowina",
		"PL": "Polen",
		"BG": "Bulgarien",
		"RO": "Rumänien",
		"CZ": "Tschechien",
		"HU": "Ungarn",
		"SK": "Slowakei",
		"AZ": "Aserbaidschan",
		"AM": "Armenien",
		"KG": "Kirgisistan",
		"IE": "Irland",
		"KR": "Südkorea",
		"ME": "Montenegro",
		"MK": "Nordmazedonien",
		"TJ": "Tadschikistan",
		"TM": "Turkmenistan",
		"AF": "Afghanistan",
		"GB": "Vereinigtes Königreich",
		"ES": "Spanien",
		"RS": "Serbien",
		"GR": "Griechenland",
		"SE": "Schweden",
		"TR": "Türkei",
		"NO": "Norwegen",
		"HR": "Kroatien",
		"SI": "Slowenien",
		"DE": "Deutschland",
		"AT": "Österreich",
		"LU": "Luxemburg",
		"IT": "Italien",
		"NL": "Niederlande",
		"CH": "Schweiz",
		"DK": "Dänemark",
		"FR": "Frankreich",
		"BE": "Belgien",
		"EG": "Ägypten",
		"TN": "Tunesien",
		"DZ": "Algerien",
		"MA": "Marokko",
		"PT": "Portugal",
		"IL": "Israel",
		"IR": "Iran",
		"SY": "Syrien",
		"LB": "Libanon",
		"IQ": "Irak",
	},
}
