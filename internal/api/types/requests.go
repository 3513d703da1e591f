package types

// Request bodies keep the legacy field names the API has always spoken.

type CreateProjectRequest struct {
	Title            string `json:"Title"`
	Description      string `json:"Description"`
	CommencementDate string `json:"Commencement_Date"`
}

type UpdateProjectRequest struct {
	Title       string  `json:"Title"`
	Description string  `json:"Description"`
	StatusID    *uint   `json:"Status_ID"`
	StatusDate  *string `json:"Status_Date"`
}

type CreateInvestorRequest struct {
	Name          string `json:"Name"`
	ContactNumber string `json:"Contact_Number"`
	Address       string `json:"Address"`
	Alias         string `json:"Alias"`
}

type UpdateInvestorRequest struct {
	Name          string `json:"Name"`
	ContactNumber string `json:"Contact_Number"`
	Address       string `json:"Address"`
	Alias         string `json:"Alias"`
}

type CreateInvestmentRequest struct {
	ProjectID        uint    `json:"Project_ID"`
	InvestorID       uint    `json:"Investor_ID"`
	InvestmentAmount float64 `json:"Investment_Amount"`
	InvestmentDate   string  `json:"Investment_Date"`
}

// UpdateInvestmentRequest is a partial update: absent fields stay untouched.
type UpdateInvestmentRequest struct {
	ProjectID        *uint    `json:"Project_ID"`
	InvestorID       *uint    `json:"Investor_ID"`
	InvestmentAmount *float64 `json:"Investment_Amount"`
	InvestmentDate   *string  `json:"Investment_Date"`
	Active           *string  `json:"Active"`
}

type CreateStatusRequest struct {
	ProjectID uint   `json:"Project_ID"`
	Status    string `json:"Status"`
}

type UpdateStatusRequest struct {
	Status string `json:"Status"`
}
