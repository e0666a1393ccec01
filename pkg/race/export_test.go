package race

// SetCar injects car state directly so tests can build exact scenarios
// without replaying ticks.
func (s *Simulation) SetCar(c Car) {
	s.car = c
}
