package entity

// PlanID identifica un plan de suscripción.
type PlanID string

const (
	PlanBasic        PlanID = "basico"
	PlanProfessional PlanID = "profesional"
	PlanEnterprise   PlanID = "empresarial"
)

// Plan capacidades del plan de suscripción. Cero en los máximos significa sin límite;
// Excluded lista las vistas no incluidas.
type Plan struct {
	ID          PlanID
	Name        string
	MaxBranches int
	MaxUsers    int
	Excluded    []View
}

var plans = map[PlanID]Plan{
	PlanBasic: {
		ID: PlanBasic, Name: "Básico", MaxBranches: 1, MaxUsers: 3,
		Excluded: []View{ViewReports, ViewAuditLog},
	},
	PlanProfessional: {ID: PlanProfessional, Name: "Profesional", MaxBranches: 3, MaxUsers: 10},
	PlanEnterprise:   {ID: PlanEnterprise, Name: "Empresarial"},
}

// PlanByID devuelve el plan; un id desconocido cae en el plan básico.
func PlanByID(id PlanID) Plan {
	if p, ok := plans[id]; ok {
		return p
	}
	return plans[PlanBasic]
}

// Allows indica si el plan incluye la vista.
func (p Plan) Allows(v View) bool {
	for _, x := range p.Excluded {
		if x == v {
			return false
		}
	}
	return true
}

// AllowsBranches indica si el plan admite n sucursales.
func (p Plan) AllowsBranches(n int) bool { return p.MaxBranches == 0 || n <= p.MaxBranches }

// AllowsUsers indica si el plan admite n usuarios.
func (p Plan) AllowsUsers(n int) bool { return p.MaxUsers == 0 || n <= p.MaxUsers }
