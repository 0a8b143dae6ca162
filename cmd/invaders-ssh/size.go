package main

import "sync"

// sizeTracker 记录 SSH 窗口尺寸变化
type sizeTracker struct {
	mu      sync.Mutex
	width   int
	height  int
	pending bool
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.pending = true
}

func (s *sizeTracker) get() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// changed 返回当前尺寸，以及自上次调用以来是否变化过
func (s *sizeTracker) changed() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pending
	s.pending = false
	return s.width, s.height, pending
}
