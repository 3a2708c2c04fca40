package entity

// Subscriber es el titular de una paja de agua (conexión domiciliar).
type Subscriber struct {
	ID               int
	FirstName        string
	LastName         string
	Address          string // puede venir vacía
	ConnectionNumber string // número de paja, identificador entero en forma de string
	Phone            string
	Active           bool
}

// FullName devuelve "Nombre Apellido" tal como se imprime en el recibo.
func (s *Subscriber) FullName() string {
	return s.FirstName + " " + s.LastName
}
