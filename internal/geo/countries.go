package geo

// Country is one entry of the reference country table. English and
// French names are populated; additional languages extend NameFR-style
// columns and the lookup in buildIndex.
type Country struct {
	Code   string
	NameEN string
	NameFR string
}

// Countries is the full serving-country configuration. The slice order
// is the order level-2 sitemaps are generated in and must stay stable
// across releases.
var Countries = []Country{
	{"af", "Afghanistan", "Afghanistan"},
	{"al", "Albania", "Albanie"},
	{"dz", "Algeria", "Algérie"},
	{"ad", "Andorra", "Andorre"},
	{"ao", "Angola", "Angola"},
	{"ag", "Antigua and Barbuda", "Antigua-et-Barbuda"},
	{"ar", "Argentina", "Argentine"},
	{"am", "Armenia", "Arménie"},
	{"au", "Australia", "Australie"},
	{"at", "Austria", "Autriche"},
	{"az", "Azerbaijan", "Azerbaïdjan"},
	{"bs", "Bahamas", "Bahamas"},
	{"bh", "Bahrain", "Bahreïn"},
	{"bd", "Bangladesh", "Bangladesh"},
	{"bb", "Barbados", "Barbade"},
	{"by", "Belarus", "Biélorussie"},
	{"be", "Belgium", "Belgique"},
	{"bz", "Belize", "Belize"},
	{"bj", "Benin", "Bénin"},
	{"bt", "Bhutan", "Bhoutan"},
	{"bo", "Bolivia", "Bolivie"},
	{"ba", "Bosnia and Herzegovina", "Bosnie-Herzégovine"},
	{"bw", "Botswana", "Botswana"},
	{"br", "Brazil", "Brésil"},
	{"bn", "Brunei", "Brunéi"},
	{"bg", "Bulgaria", "Bulgarie"},
	{"bf", "Burkina Faso", "Burkina Faso"},
	{"bi", "Burundi", "Burundi"},
	{"cv", "Cabo Verde", "Cap-Vert"},
	{"kh", "Cambodia", "Cambodge"},
	{"cm", "Cameroon", "Cameroun"},
	{"ca", "Canada", "Canada"},
	{"cf", "Central African Republic", "République centrafricaine"},
	{"td", "Chad", "Tchad"},
	{"cl", "Chile", "Chili"},
	{"cn", "China", "Chine"},
	{"co", "Colombia", "Colombie"},
	{"km", "Comoros", "Comores"},
	{"cg", "Congo", "Congo"},
	{"cd", "Democratic Republic of the Congo", "République démocratique du Congo"},
	{"cr", "Costa Rica", "Costa Rica"},
	{"ci", "Ivory Coast", "Côte d'Ivoire"},
	{"hr", "Croatia", "Croatie"},
	{"cu", "Cuba", "Cuba"},
	{"cy", "Cyprus", "Chypre"},
	{"cz", "Czechia", "Tchéquie"},
	{"dk", "Denmark", "Danemark"},
	{"dj", "Djibouti", "Djibouti"},
	{"dm", "Dominica", "Dominique"},
	{"do", "Dominican Republic", "République dominicaine"},
	{"ec", "Ecuador", "Équateur"},
	{"eg", "Egypt", "Égypte"},
	{"sv", "El Salvador", "Salvador"},
	{"gq", "Equatorial Guinea", "Guinée équatoriale"},
	{"er", "Eritrea", "Érythrée"},
	{"ee", "Estonia", "Estonie"},
	{"sz", "Eswatini", "Eswatini"},
	{"et", "Ethiopia", "Éthiopie"},
	{"fj", "Fiji", "Fidji"},
	{"fi", "Finland", "Finlande"},
	{"fr", "France", "France"},
	{"ga", "Gabon", "Gabon"},
	{"gm", "Gambia", "Gambie"},
	{"ge", "Georgia", "Géorgie"},
	{"de", "Germany", "Allemagne"},
	{"gh", "Ghana", "Ghana"},
	{"gr", "Greece", "Grèce"},
	{"gd", "Grenada", "Grenade"},
	{"gt", "Guatemala", "Guatemala"},
	{"gn", "Guinea", "Guinée"},
	{"gw", "Guinea-Bissau", "Guinée-Bissau"},
	{"gy", "Guyana", "Guyana"},
	{"ht", "Haiti", "Haïti"},
	{"hn", "Honduras", "Honduras"},
	{"hu", "Hungary", "Hongrie"},
	{"is", "Iceland", "Islande"},
	{"in", "India", "Inde"},
	{"id", "Indonesia", "Indonésie"},
	{"ir", "Iran", "Iran"},
	{"iq", "Iraq", "Irak"},
	{"ie", "Ireland", "Irlande"},
	{"il", "Israel", "Israël"},
	{"it", "Italy", "Italie"},
	{"jm", "Jamaica", "Jamaïque"},
	{"jp", "Japan", "Japon"},
	{"jo", "Jordan", "Jordanie"},
	{"kz", "Kazakhstan", "Kazakhstan"},
	{"ke", "Kenya", "Kenya"},
	{"ki", "Kiribati", "Kiribati"},
	{"kp", "North Korea", "Corée du Nord"},
	{"kr", "South Korea", "Corée du Sud"},
	{"kw", "Kuwait", "Koweït"},
	{"kg", "Kyrgyzstan", "Kirghizistan"},
	{"la", "Laos", "Laos"},
	{"lv", "Latvia", "Lettonie"},
	{"lb", "Lebanon", "Liban"},
	{"ls", "Lesotho", "Lesotho"},
	{"lr", "Liberia", "Libéria"},
	{"ly", "Libya", "Libye"},
	{"li", "Liechtenstein", "Liechtenstein"},
	{"lt", "Lithuania", "Lituanie"},
	{"lu", "Luxembourg", "Luxembourg"},
	{"mg", "Madagascar", "Madagascar"},
	{"mw", "Malawi", "Malawi"},
	{"my", "Malaysia", "Malaisie"},
	{"mv", "Maldives", "Maldives"},
	{"ml", "Mali", "Mali"},
	{"mt", "Malta", "Malte"},
	{"mh", "Marshall Islands", "Îles Marshall"},
	{"mr", "Mauritania", "Mauritanie"},
	{"mu", "Mauritius", "Maurice"},
	{"mx", "Mexico", "Mexique"},
	{"fm", "Micronesia", "Micronésie"},
	{"md", "Moldova", "Moldavie"},
	{"mc", "Monaco", "Monaco"},
	{"mn", "Mongolia", "Mongolie"},
	{"me", "Montenegro", "Monténégro"},
	{"ma", "Morocco", "Maroc"},
	{"mz", "Mozambique", "Mozambique"},
	{"mm", "Myanmar", "Birmanie"},
	{"na", "Namibia", "Namibie"},
	{"nr", "Nauru", "Nauru"},
	{"np", "Nepal", "Népal"},
	{"nl", "Netherlands", "Pays-Bas"},
	{"nz", "New Zealand", "Nouvelle-Zélande"},
	{"ni", "Nicaragua", "Nicaragua"},
	{"ne", "Niger", "Niger"},
	{"ng", "Nigeria", "Nigéria"},
	{"mk", "North Macedonia", "Macédoine du Nord"},
	{"no", "Norway", "Norvège"},
	{"om", "Oman", "Oman"},
	{"pk", "Pakistan", "Pakistan"},
	{"pw", "Palau", "Palaos"},
	{"pa", "Panama", "Panama"},
	{"pg", "Papua New Guinea", "Papouasie-Nouvelle-Guinée"},
	{"py", "Paraguay", "Paraguay"},
	{"pe", "Peru", "Pérou"},
	{"ph", "Philippines", "Philippines"},
	{"pl", "Poland", "Pologne"},
	{"pt", "Portugal", "Portugal"},
	{"qa", "Qatar", "Qatar"},
	{"ro", "Romania", "Roumanie"},
	{"ru", "Russia", "Russie"},
	{"rw", "Rwanda", "Rwanda"},
	{"kn", "Saint Kitts and Nevis", "Saint-Christophe-et-Niévès"},
	{"lc", "Saint Lucia", "Sainte-Lucie"},
	{"vc", "Saint Vincent and the Grenadines", "Saint-Vincent-et-les-Grenadines"},
	{"ws", "Samoa", "Samoa"},
	{"sm", "San Marino", "Saint-Marin"},
	{"st", "Sao Tome and Principe", "Sao Tomé-et-Principe"},
	{"sa", "Saudi Arabia", "Arabie saoudite"},
	{"sn", "Senegal", "Sénégal"},
	{"rs", "Serbia", "Serbie"},
	{"sc", "Seychelles", "Seychelles"},
	{"sl", "Sierra Leone", "Sierra Leone"},
	{"sg", "Singapore", "Singapour"},
	{"sk", "Slovakia", "Slovaquie"},
	{"si", "Slovenia", "Slovénie"},
	{"sb", "Solomon Islands", "Îles Salomon"},
	{"so", "Somalia", "Somalie"},
	{"za", "South Africa", "Afrique du Sud"},
	{"ss", "South Sudan", "Soudan du Sud"},
	{"es", "Spain", "Espagne"},
	{"lk", "Sri Lanka", "Sri Lanka"},
	{"sd", "Sudan", "Soudan"},
	{"sr", "Suriname", "Suriname"},
	{"se", "Sweden", "Suède"},
	{"ch", "Switzerland", "Suisse"},
	{"sy", "Syria", "Syrie"},
	{"tj", "Tajikistan", "Tadjikistan"},
	{"tz", "Tanzania", "Tanzanie"},
	{"th", "Thailand", "Thaïlande"},
	{"tl", "Timor-Leste", "Timor oriental"},
	{"tg", "Togo", "Togo"},
	{"to", "Tonga", "Tonga"},
	{"tt", "Trinidad and Tobago", "Trinité-et-Tobago"},
	{"tn", "Tunisia", "Tunisie"},
	{"tr", "Turkey", "Turquie"},
	{"tm", "Turkmenistan", "Turkménistan"},
	{"tv", "Tuvalu", "Tuvalu"},
	{"ug", "Uganda", "Ouganda"},
	{"ua", "Ukraine", "Ukraine"},
	{"ae", "United Arab Emirates", "Émirats arabes unis"},
	{"gb", "United Kingdom", "Royaume-Uni"},
	{"us", "United States", "États-Unis"},
	{"uy", "Uruguay", "Uruguay"},
	{"uz", "Uzbekistan", "Ouzbékistan"},
	{"vu", "Vanuatu", "Vanuatu"},
	{"ve", "Venezuela", "Venezuela"},
	{"vn", "Vietnam", "Viêt Nam"},
	{"ye", "Yemen", "Yémen"},
	{"zm", "Zambia", "Zambie"},
	{"zw", "Zimbabwe", "Zimbabwe"},
	{"va", "Vatican City", "Vatican"},
	{"ps", "Palestine", "Palestine"},
	{"xk", "Kosovo", "Kosovo"},
	{"tw", "Taiwan", "Taïwan"},
}

// CountryCodes returns the serving-country codes in table order.
func CountryCodes() []string {
	codes := make([]string, len(Countries))
	for i, c := range Countries {
		codes[i] = c.Code
	}
	return codes
}
