package usecase

// maxHistoryEntries caps the per-session transcript; older entries roll off.
const maxHistoryEntries = 20
