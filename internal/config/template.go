package config

// Header는 Save가 설정 값 앞에 쓰는 설명 주석이다.
const Header = `# oishell configuration file
#
# transcript_path   명령과 출력이 기록되는 transcript 파일 (절대 경로 또는 ~/ 경로)
# assistant_command 셸이 해석하지 못한 명령을 transcript와 함께 넘겨받는 프로그램
# backup_rc         install 시 셸 시작 파일을 <파일>.oishell-backup으로 백업

`
