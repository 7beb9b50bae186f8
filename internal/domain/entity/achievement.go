package entity

type RequirementType string

const (
	RequirementVisits      RequirementType = "VISITAS"
	RequirementConsumption RequirementType = "CONSUMO"
	RequirementReferrals   RequirementType = "REFERIDOS"
)

// Achievement is a badge awarded for meeting a requirement type.
type Achievement struct {
	ID              int64           `json:"id"`
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	IconURL         string          `json:"iconoUrl"`
	RequirementType RequirementType `json:"tipoRequisito"`
}
