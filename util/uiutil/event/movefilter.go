package event

// Keeps only the last mouse move of each run of consecutive moves. Moves may be wrapped in a WindowInput. Other events keep their order.
func FilterMouseMoves(evs []interface{}) []interface{} {
	u := make([]interface{}, 0, len(evs))
	for i, ev := range evs {
		if isMouseMove(ev) && i+1 < len(evs) && isMouseMove(evs[i+1]) {
			continue
		}
		u = append(u, ev)
	}
	return u
}

func isMouseMove(ev interface{}) bool {
	if wi, ok := ev.(*WindowInput); ok {
		ev = wi.Event
	}
	_, ok := ev.(*MouseMove)
	return ok
}
