package climb

// MemoryKeeper keeps the best score in memory. It is used when no score
// database is available and in tests.
type MemoryKeeper struct {
	Best  int
	Saves int // number of SaveHighScore calls
}

// LoadHighScore returns the stored best score.
func (k *MemoryKeeper) LoadHighScore() int {
	return k.Best
}

// SaveHighScore stores score as the new best.
func (k *MemoryKeeper) SaveHighScore(score int) {
	k.Best = score
	k.Saves++
}
