package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Operators() OperatorRepository
	Orders() OrderRepository
	Customers() CustomerRepository
}
