package ecs

// System is one stage of a frame. Systems may declare Query and Singleton fields; the
// Scheduler binds them at registration and refreshes queries before each frame.
type System interface {
	Execute(frame *UpdateFrame)
}
