package zones

// DefaultZones is the built-in delivery table used when no database source is
// configured.
var DefaultZones = []Zone{
	{State: "Lagos", LocalGovernment: "Apapa", Locality: "Ijora"},
	{State: "Lagos", LocalGovernment: "Apapa", Locality: "Apapa GRA"},
	{State: "Lagos", LocalGovernment: "Apapa", Locality: "Kirikiri"},
	{State: "Lagos", LocalGovernment: "Apapa", Locality: "Olodi"},

	{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Lekki"},
	{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Victoria Island"},
	{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Ikoyi"},
	{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Ajah"},
	{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Oniru"},

	{State: "Lagos", LocalGovernment: "Lagos Island", Locality: "Obalende"},
	{State: "Lagos", LocalGovernment: "Lagos Island", Locality: "Marina"},
	{State: "Lagos", LocalGovernment: "Lagos Island", Locality: "Idumota"},

	{State: "Lagos", LocalGovernment: "Lagos Mainland", Locality: "Yaba"},
	{State: "Lagos", LocalGovernment: "Lagos Mainland", Locality: "Ebute Metta"},
	{State: "Lagos", LocalGovernment: "Lagos Mainland", Locality: "Oyingbo"},

	{State: "Lagos", LocalGovernment: "Surulere", Locality: "Aguda"},
	{State: "Lagos", LocalGovernment: "Surulere", Locality: "Ojuelegba"},
	{State: "Lagos", LocalGovernment: "Surulere", Locality: "Bode Thomas"},

	{State: "Oyo", LocalGovernment: "Ibadan North", Locality: "Bodija"},
	{State: "Oyo", LocalGovernment: "Ibadan North", Locality: "Agodi"},
	{State: "Oyo", LocalGovernment: "Ibadan North", Locality: "Sango"},
	{State: "Oyo", LocalGovernment: "Ibadan North", Locality: "University of Ibadan"},
	{State: "Oyo", LocalGovernment: "Ibadan South-West", Locality: "Ring Road"},
	{State: "Oyo", LocalGovernment: "Ibadan South-West", Locality: "Oke-Ado"},
}
