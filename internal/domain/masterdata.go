package domain

// Master data records are read-only lookups maintained outside this service;
// they back the admin filters and name resolution during bulk upload.

type Project struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Zone struct {
	ID        int32  `json:"id"`
	ProjectID int32  `json:"project_id"`
	Name      string `json:"name"`
}

type Block struct {
	ID     int32  `json:"id"`
	ZoneID int32  `json:"zone_id"`
	Name   string `json:"name"`
}

type PropertyType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type FloorRange struct {
	ID    int32  `json:"id"`
	Label string `json:"label"`
}

type Currency struct {
	ID   int32  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
