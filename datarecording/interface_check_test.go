package datarecording

var _ DataRecorder = (*SQLiteRecorder)(nil)
