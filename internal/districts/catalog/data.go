package catalog

import "github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/domain"

// districts is the static reference dataset, loaded once and never mutated.
var districts = []domain.District{
	// Andhra Pradesh
	{ID: "1", Name: "Anantapur", State: "Andhra Pradesh", NameHi: "अनंतपुर", StateHi: "आंध्र प्रदेश"},
	{ID: "2", Name: "Chittoor", State: "Andhra Pradesh", NameHi: "चित्तूर", StateHi: "आंध्र प्रदेश"},
	{ID: "3", Name: "East Godavari", State: "Andhra Pradesh", NameHi: "पूर्वी गोदावरी", StateHi: "आंध्र प्रदेश"},
	{ID: "4", Name: "Guntur", State: "Andhra Pradesh", NameHi: "गुंटूर", StateHi: "आंध्र प्रदेश"},
	{ID: "5", Name: "Krishna", State: "Andhra Pradesh", NameHi: "कृष्णा", StateHi: "आंध्र प्रदेश"},

	// Karnataka
	{ID: "6", Name: "Bengaluru Urban", State: "Karnataka", NameHi: "बेंगलुरु शहरी", StateHi: "कर्नाटक"},
	{ID: "7", Name: "Mysuru", State: "Karnataka", NameHi: "मैसूरु", StateHi: "कर्नाटक"},
	{ID: "8", Name: "Mangaluru", State: "Karnataka", NameHi: "मंगलुरु", StateHi: "कर्नाटक"},

	// Kerala
	{ID: "9", Name: "Thiruvananthapuram", State: "Kerala", NameHi: "तिरुवनंतपुरम", StateHi: "केरल"},
	{ID: "10", Name: "Kochi", State: "Kerala", NameHi: "कोच्चि", StateHi: "केरल"},
	{ID: "11", Name: "Kozhikode", State: "Kerala", NameHi: "कोझीकोड", StateHi: "केरल"},

	// Tamil Nadu
	{ID: "12", Name: "Chennai", State: "Tamil Nadu", NameHi: "चेन्नई", StateHi: "तमिलनाडु"},
	{ID: "13", Name: "Coimbatore", State: "Tamil Nadu", NameHi: "कोयंबटूर", StateHi: "तमिलनाडु"},
	{ID: "14", Name: "Madurai", State: "Tamil Nadu", NameHi: "मदुरै", StateHi: "तमिलनाडु"},

	// Maharashtra
	{ID: "15", Name: "Mumbai City", State: "Maharashtra", NameHi: "मुंबई शहर", StateHi: "महाराष्ट्र"},
	{ID: "16", Name: "Pune", State: "Maharashtra", NameHi: "पुणे", StateHi: "महाराष्ट्र"},
	{ID: "17", Name: "Nagpur", State: "Maharashtra", NameHi: "नागपुर", StateHi: "महाराष्ट्र"},

	// Gujarat
	{ID: "18", Name: "Ahmedabad", State: "Gujarat", NameHi: "अहमदाबाद", StateHi: "गुजरात"},
	{ID: "19", Name: "Surat", State: "Gujarat", NameHi: "सूरत", StateHi: "गुजरात"},
	{ID: "20", Name: "Vadodara", State: "Gujarat", NameHi: "वडोदरा", StateHi: "गुजरात"},

	// Rajasthan
	{ID: "21", Name: "Jaipur", State: "Rajasthan", NameHi: "जयपुर", StateHi: "राजस्थान"},
	{ID: "22", Name: "Jodhpur", State: "Rajasthan", NameHi: "जोधपुर", StateHi: "राजस्थान"},
	{ID: "23", Name: "Udaipur", State: "Rajasthan", NameHi: "उदयपुर", StateHi: "राजस्थान"},

	// Uttar Pradesh
	{ID: "24", Name: "Lucknow", State: "Uttar Pradesh", NameHi: "लखनऊ", StateHi: "उत्तर प्रदेश"},
	{ID: "25", Name: "Kanpur", State: "Uttar Pradesh", NameHi: "कानपुर", StateHi: "उत्तर प्रदेश"},
	{ID: "26", Name: "Varanasi", State: "Uttar Pradesh", NameHi: "वाराणसी", StateHi: "उत्तर प्रदेश"},

	// Bihar
	{ID: "27", Name: "Patna", State: "Bihar", NameHi: "पटना", StateHi: "बिहार"},
	{ID: "28", Name: "Gaya", State: "Bihar", NameHi: "गया", StateHi: "बिहार"},
	{ID: "29", Name: "Muzaffarpur", State: "Bihar", NameHi: "मुजफ्फरपुर", StateHi: "बिहार"},

	// West Bengal
	{ID: "30", Name: "Kolkata", State: "West Bengal", NameHi: "कोलकाता", StateHi: "पश्चिम बंगाल"},
	{ID: "31", Name: "Howrah", State: "West Bengal", NameHi: "हावड़ा", StateHi: "पश्चिम बंगाल"},
	{ID: "32", Name: "Siliguri", State: "West Bengal", NameHi: "सिलीगुड़ी", StateHi: "पश्चिम बंगाल"},
}
