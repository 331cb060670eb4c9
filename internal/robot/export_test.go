package robot

// WithState places r in s directly, bypassing Turn and Move. It exists only
// for test setup.
func WithState(r *Robot, s State) *Robot {
	r.state = s
	return r
}
