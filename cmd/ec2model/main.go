// ec2model inspects the EC2 model and checks EC2 permissions with dry-run
// requests.
package main

func main() {
	Execute()
}
